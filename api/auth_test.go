package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placeloop/placeloop-api/api/mocks"
	"github.com/placeloop/placeloop-api/schema"
	"github.com/placeloop/placeloop-api/store"
)

var testJWTSecret = []byte("test-signing-secret")

func testAccount(t *testing.T, name, email, password string) *schema.Account {
	account := &schema.Account{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
	}
	if err := account.SetPassword(password); err != nil {
		t.Fatal(err)
	}
	return account
}

func parseClaims(t *testing.T, token string) *AccountClaims {
	claims := &AccountClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	assert.Nil(t, err, "token does not verify")
	assert.True(t, parsed.Valid, "token is not valid")
	return claims
}

func TestRegister(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	account := testAccount(t, "alice", "alice@example.com", "password123")
	m.EXPECT().CreateAccount("alice", "alice@example.com", "password123").Return(account, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.accountRegister)

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"password123"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	claims := parseClaims(t, jResp["token"])
	assert.Equal(t, "alice@example.com", claims.Email, "wrong email claim")
	assert.Equal(t, "alice", claims.Name, "wrong name claim")
	assert.Equal(t, account.ID.Hex(), claims.Subject, "wrong subject claim")
}

func TestRegisterMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.accountRegister)

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"name":"alice","email":"alice@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestRegisterEmailTaken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	m.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrEmailTaken).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/register", s.accountRegister)

	req := httptest.NewRequest("POST", "/register",
		strings.NewReader(`{"name":"alice","email":"alice@example.com","password":"password123"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestLogin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	account := testAccount(t, "bob", "bob@example.com", "hunter22hunter")
	m.EXPECT().GetAccountByEmail("bob@example.com").Return(account, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.accountLogin)

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"bob@example.com","password":"hunter22hunter"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]string
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	claims := parseClaims(t, jResp["token"])
	assert.Equal(t, "bob@example.com", claims.Email, "wrong email claim")
}

func TestLoginWrongPassword(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	account := testAccount(t, "bob", "bob@example.com", "hunter22hunter")
	m.EXPECT().GetAccountByEmail("bob@example.com").Return(account, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.accountLogin)

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"bob@example.com","password":"not the password"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
	assert.NotContains(t, w.Body.String(), "token", "no token may leak on failed login")
}

func TestLoginUnknownEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	m.EXPECT().GetAccountByEmail("nobody@example.com").Return(nil, store.ErrAccountNotFound).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.accountLogin)

	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"nobody@example.com","password":"whatever1"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
}

func TestLoginMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{
		mongoStore: m,
		jwtSecret:  testJWTSecret,
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", s.accountLogin)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":"bob@example.com"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
