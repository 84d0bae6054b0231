package domain

import "errors"

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAdGroupNotFound  = errors.New("ad group not found")
	ErrCreativeNotFound = errors.New("creative not found")

	ErrInvalidArgument = errors.New("invalid argument")
)
