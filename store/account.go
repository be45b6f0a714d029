package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placeloop/placeloop-api/schema"
)

var (
	ErrEmailTaken      = fmt.Errorf("email already registered")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

type AccountStore interface {
	CreateAccount(name, email, password string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
}

// CreateAccount registers a new account. The password is stored only as a
// salted hash. Email uniqueness is enforced both by a pre-check and by the
// unique index, so a concurrent duplicate still maps to ErrEmailTaken.
func (m *mongoDB) CreateAccount(name, email, password string) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	err := c.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	account := schema.Account{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
	}
	if err := account.SetPassword(password); err != nil {
		return nil, err
	}

	if _, err := c.InsertOne(ctx, account); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == DuplicateKeyCode {
					return nil, ErrEmailTaken
				}
			}
		}
		return nil, err
	}

	return &account, nil
}

// GetAccountByEmail finds an account by its unique email.
func (m *mongoDB) GetAccountByEmail(email string) (*schema.Account, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AccountCollection)

	var account schema.Account
	if err := c.FindOne(ctx, bson.M{"email": email}).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
