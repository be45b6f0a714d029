package schema

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/pbkdf2"
)

const (
	AccountCollection = "accounts"
)

const (
	passwordSaltLength = 16
	passwordIterations = 100000
	passwordKeyLength  = 64
)

// Account is a registered user. The password is kept only as a salted
// pbkdf2 hash; neither salt nor hash is ever serialized into a response.
type Account struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Salt  string             `json:"-" bson:"salt"`
	Hash  string             `json:"-" bson:"hash"`
}

// SetPassword derives and stores a fresh salt and hash for the given
// password. The plaintext is not retained.
func (a *Account) SetPassword(password string) error {
	salt := make([]byte, passwordSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return err
	}

	a.Salt = hex.EncodeToString(salt)
	a.Hash = hex.EncodeToString(hashPassword(password, salt))
	return nil
}

// ValidPassword recomputes the hash with the stored salt and compares it
// in constant time.
func (a *Account) ValidPassword(password string) bool {
	salt, err := hex.DecodeString(a.Salt)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(a.Hash)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(hashPassword(password, salt), expected) == 1
}

func hashPassword(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, passwordIterations, passwordKeyLength, sha512.New)
}
