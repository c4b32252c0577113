package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/NightFoX54/ERP-Proje/internal/apierror"
	"github.com/NightFoX54/ERP-Proje/internal/middleware"
	"github.com/NightFoX54/ERP-Proje/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathUUID parses the named path parameter; on failure it writes the 400
// response and returns false.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses a raw query value; on failure it writes the 400 response
// and returns false.
func queryUUID(c *gin.Context, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// actorFromClaims builds the service-layer actor out of the JWT claims.
func actorFromClaims(c *gin.Context) service.Actor {
	claims := middleware.GetClaims(c)
	actor := service.Actor{Role: claims.Role}
	if id, err := uuid.Parse(claims.AccountID); err == nil {
		actor.AccountID = id
	}
	if claims.BranchID != "" {
		if id, err := uuid.Parse(claims.BranchID); err == nil {
			actor.BranchID = &id
		}
	}
	return actor
}

// writeServiceError maps service sentinels onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case service.NotFound(err):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrBranchForbidden):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrBranchExists):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	}
}
