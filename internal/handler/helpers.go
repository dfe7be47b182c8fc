package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/aungmyatthu259369349/market-link-logistics/internal/apierror"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewFieldErrors(fields))
		return false
	}
	return true
}

// respondError maps the domain error taxonomy onto HTTP statuses. Storage
// failures and anything unrecognized become a generic 500 — driver detail is
// logged, never sent.
func respondError(c *gin.Context, err error) {
	var (
		ve *apierror.ValidationError
		ue *apierror.UnauthorizedError
		nf *apierror.NotFoundError
		ce *apierror.ConflictError
		is *apierror.InsufficientStockError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, apierror.New(ve.Msg))
	case errors.As(err, &ue):
		c.JSON(http.StatusUnauthorized, apierror.New(ue.Msg))
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, apierror.New(nf.Msg))
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, apierror.New(ce.Msg))
	case errors.As(err, &is):
		c.JSON(http.StatusBadRequest, apierror.New(is.Error()))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
