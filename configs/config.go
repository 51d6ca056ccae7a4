package configs

import (
	"github.com/go-playground/validator/v10"
	"github.com/mdayat/prayer-tracker/internal/cache"
)

type Configs struct {
	Env      Env
	Db       Db
	Cache    cache.Cache
	Validate *validator.Validate
}

func NewConfigs(env Env, db Db, c cache.Cache) Configs {
	return Configs{
		Env:      env,
		Db:       db,
		Cache:    c,
		Validate: NewValidate(),
	}
}
