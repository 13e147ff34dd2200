package domain_test

import (
	"errors"
	"testing"

	"buglens/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestValidateGeometry_Rectangle(t *testing.T) {
	valid := domain.Geometry{X: f(0.1), Y: f(0.1), W: f(0.5), H: f(0.3)}
	assert.NoError(t, domain.ValidateGeometry(domain.AnnotationRectangle, valid))

	// Прямоугольник выходит за правый край
	overflow := domain.Geometry{X: f(0.7), Y: f(0.1), W: f(0.5), H: f(0.3)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationRectangle, overflow))

	// Не хватает высоты
	missing := domain.Geometry{X: f(0.1), Y: f(0.1), W: f(0.5)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationRectangle, missing))

	negative := domain.Geometry{X: f(-0.1), Y: f(0.1), W: f(0.5), H: f(0.3)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationRectangle, negative))
}

func TestValidateGeometry_Circle(t *testing.T) {
	valid := domain.Geometry{CX: f(0.5), CY: f(0.5), R: f(0.25)}
	assert.NoError(t, domain.ValidateGeometry(domain.AnnotationCircle, valid))

	noRadius := domain.Geometry{CX: f(0.5), CY: f(0.5)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationCircle, noRadius))

	outOfRange := domain.Geometry{CX: f(1.5), CY: f(0.5), R: f(0.25)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationCircle, outOfRange))
}

func TestValidateGeometry_Arrow(t *testing.T) {
	valid := domain.Geometry{X1: f(0), Y1: f(0), X2: f(1), Y2: f(1)}
	assert.NoError(t, domain.ValidateGeometry(domain.AnnotationArrow, valid))

	missing := domain.Geometry{X1: f(0), Y1: f(0), X2: f(1)}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationArrow, missing))
}

func TestValidateGeometry_Freehand(t *testing.T) {
	valid := domain.Geometry{Points: []domain.Point{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.3}}}
	assert.NoError(t, domain.ValidateGeometry(domain.AnnotationFreehand, valid))

	// Одной точки недостаточно
	single := domain.Geometry{Points: []domain.Point{{X: 0.1, Y: 0.1}}}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationFreehand, single))

	outOfRange := domain.Geometry{Points: []domain.Point{{X: 0.1, Y: 0.1}, {X: 1.2, Y: 0.3}}}
	assert.Error(t, domain.ValidateGeometry(domain.AnnotationFreehand, outOfRange))
}

func TestValidateGeometry_UnknownKind(t *testing.T) {
	err := domain.ValidateGeometry("triangle", domain.Geometry{})
	require.Error(t, err)

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrorCodeInvalidGeometry, domainErr.Code)
}

func TestValidateGeometry_ErrorMatchesSentinel(t *testing.T) {
	err := domain.ValidateGeometry(domain.AnnotationCircle, domain.Geometry{})
	assert.True(t, errors.Is(err, domain.ErrInvalidGeometry))
}
