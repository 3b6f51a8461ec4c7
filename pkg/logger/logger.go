package logger

import (
	"go.uber.org/zap"
)

// New builds a JSON logger in production and a console logger otherwise.
func New(production bool) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
