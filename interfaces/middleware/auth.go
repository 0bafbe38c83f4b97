package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func Auth(userRepository repository.IUser) gin.HandlerFunc {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Unauthorized"

	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		secretKey := os.Getenv("SECRET_KEY")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		auth := strings.Split(authorization, "Bearer ")
		if len(auth) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		userClaims, token, err := getClaim(auth[1], secretKey)

		if token != nil && token.Valid {
			if !next(ctx, userRepository, userClaims) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
				return
			}
		} else {
			if abort(err, res) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
				return
			}
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
		}
	}
}

func abort(err error, res dto.Res) bool {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			res.ResponseMessage = "That's not even a token"
		} else if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			// Token is either expired or not active yet
			res.ResponseMessage = "Timing is everything"
		} else {
			res.ResponseMessage = fmt.Sprintf("Couldn't handle this token:%v", err)
		}
		return true
	}
	return false
}

func next(ctx *gin.Context, userRepository repository.IUser, userClaims model.UserClaims) bool {
	if _, err := userRepository.GetByUserName(ctx.Request.Context(), userClaims.UserName); err != nil {
		return false
	}
	ctx.Set("user_id", userClaims.Issuer)
	ctx.Set("user_name", userClaims.UserName)
	ctx.Next()
	return true
}

func getClaim(raw, secretKey string) (model.UserClaims, *jwt.Token, error) {
	var userClaims model.UserClaims
	token, err := jwt.ParseWithClaims(
		raw,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
	)
	return userClaims, token, err
}
