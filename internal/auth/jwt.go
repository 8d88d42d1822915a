package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("Invalid or expired token")

// Claims is the identity carried by a verified access token.
type Claims struct {
	UserID uint
	Role   types.Role
}

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}

	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) GenerateJWT(userID uint, role types.Role) (string, error) {
	now := i.now()

	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// VerifyJWT checks signature and expiry only; there is no server-side session state.
func (i *JWTIssuer) VerifyJWT(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(i.now))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || userID == 0 {
		return nil, ErrInvalidToken
	}

	roleStr, _ := claims["role"].(string)
	role := types.Role(roleStr)

	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: uint(userID), Role: role}, nil
}
