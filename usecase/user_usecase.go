package usecase

import (
	"context"
	"crypto/md5"
	"fmt"
	"strconv"
	"time"

	"clipstream/domain/dto"
	"clipstream/domain/model"
	"clipstream/domain/repository"
	"clipstream/infrastructure/configuration"
	"clipstream/infrastructure/logger"
	"clipstream/infrastructure/utils"
)

type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.ResLogin
	Register(ctx context.Context, req model.ReqRegister) dto.Res
	// LoginWithProvider upserts an OAuth-provisioned user and issues a token.
	LoginWithProvider(ctx context.Context, provider, email, name string) dto.ResLogin
}

type userUsecase struct {
	userRepository repository.IUser
}

func NewUserUsecase(userRepository repository.IUser) IUserUsecase {
	return &userUsecase{userRepository: userRepository}
}

func (u *userUsecase) Login(ctx context.Context, req model.ReqLogin) dto.ResLogin {
	var res dto.ResLogin
	res.ResponseCode = "401"
	res.ResponseMessage = "Unauthorized"

	user, err := u.userRepository.GetByUserName(ctx, req.UserName)
	if err != nil {
		logger.GetLogger().WithField("user_name", req.UserName).Info("User not found")
		return res
	}
	hashed := fmt.Sprintf("%x", md5.Sum([]byte(req.Password)))
	if user.Password != hashed {
		return res
	}

	token, err := issueToken(user)
	if err != nil {
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	res.ResponseCode = "200"
	res.ResponseMessage = "Success"
	res.AccessToken = token
	return res
}

func (u *userUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	var res dto.Res
	if _, err := u.userRepository.GetByUserName(ctx, req.UserName); err == nil {
		res.ResponseCode = "409"
		res.ResponseMessage = "User already exists"
		return res
	}
	user := model.User{
		Name:     req.Name,
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password, // already md5-hexed by the handler
		Provider: "local",
	}
	if err := u.userRepository.CreateUser(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	res.ResponseCode = "201"
	res.ResponseMessage = "Created"
	return res
}

func (u *userUsecase) LoginWithProvider(ctx context.Context, provider, email, name string) dto.ResLogin {
	var res dto.ResLogin
	user, err := u.userRepository.UpsertByEmail(ctx, model.User{
		Name:     name,
		UserName: email,
		Email:    email,
		Provider: provider,
	})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while upserting OAuth user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	token, err := issueToken(user)
	if err != nil {
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal Server Error"
		return res
	}
	res.ResponseCode = "200"
	res.ResponseMessage = "Success"
	res.AccessToken = token
	return res
}

func issueToken(user model.User) (string, error) {
	now := utils.GetCurrentTime()
	payload := map[string]interface{}{
		"iss":       strconv.FormatInt(user.ID, 10),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
	}
	return utils.GenerateToken(payload, configuration.C.App.SecretKey)
}
