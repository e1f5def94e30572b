package echoapi

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/yumoapp/aula/core"
)

var (
	appName                string
	signingKey             []byte
	expirationDelta        time.Duration
	refreshExpirationDelta time.Duration

	jwtConfig middleware.JWTConfig
)

// Claims represents the authorization claims transmitted via a JWT.
// Subject carries the student's display name; there is no account store
// behind it.
type Claims struct {
	jwt.StandardClaims
	OriginalIssuedAt int64  `json:"oriat,omitempty"`
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty"`
}

func configureAuth(conf *core.Config) echo.MiddlewareFunc {
	appName = conf.AppName
	signingKey = []byte(conf.SecretKey)
	expirationDelta = conf.Server.JWTExpirationDelta
	refreshExpirationDelta = conf.Server.JWTRefreshExpirationDelta

	jwtConfig = middleware.JWTConfig{
		SigningKey:    signingKey,
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    "studentToken",
		Claims:        new(Claims),
	}
	return middleware.JWTWithConfig(jwtConfig)
}

func getStudentClaims(name, email string, origIat ...int64) *Claims {
	now := time.Now()
	nownix := now.Unix()

	var oriat int64
	if len(origIat) > 0 {
		oriat = origIat[0]
	} else {
		oriat = nownix
	}

	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    appName,
			Subject:   name,
			Audience:  "Students",
			ExpiresAt: now.Add(expirationDelta).Unix(),
			IssuedAt:  nownix,
		},
		OriginalIssuedAt: oriat,
		Name:             name,
		Email:            email,
	}
}

// generateToken generates a signed JWT token string representing the student Claims.
func generateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(jwtConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(signingKey)
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(jwtConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

func refreshToken(ctx echo.Context) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", err
	}

	// check if refresh has not expired
	expTime := time.Unix(claims.OriginalIssuedAt, 0).Add(refreshExpirationDelta)
	if time.Now().After(expTime) {
		return "", errRefreshExpired
	}

	newClaims := getStudentClaims(claims.Name, claims.Email, claims.OriginalIssuedAt)
	return generateToken(newClaims)
}

// headerClaims parses the Authorization header without requiring it; endpoints
// that behave differently for signed-in students use it.
func headerClaims(ctx echo.Context) (Claims, bool) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return Claims{}, false
	}

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, false
	}
	return *claims, true
}
