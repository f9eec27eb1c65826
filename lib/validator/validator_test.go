package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type nested struct {
	Institution string `json:"institution" validate:"required,min=2"`
}

type payload struct {
	Email      string   `json:"email" validate:"required,email"`
	Position   string   `json:"desired_position" validate:"min=2"`
	Employment string   `json:"employment_type" validate:"employment_type"`
	Education  []nested `json:"education" validate:"dive"`
}

func TestStruct(t *testing.T) {
	t.Run(`valid payload check`, func(t *testing.T) {
		err := Struct(payload{Email: "a@b.ru", Position: "Повар", Employment: "full_time"})
		require.NoError(t, err)
	})

	t.Run(`json field names check`, func(t *testing.T) {
		err := Struct(payload{Email: "bad", Position: "П", Employment: "unknown"})
		require.Error(t, err)
		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		require.Equal(t, "некорректный email", vErr.Errors["email"])
		require.Equal(t, "минимальная длина 2 символов", vErr.Errors["desired_position"])
		require.Equal(t, "неизвестный тип занятости", vErr.Errors["employment_type"])
	})

	t.Run(`nested path check`, func(t *testing.T) {
		err := Struct(payload{Email: "a@b.ru", Position: "Повар", Education: []nested{{Institution: "М"}}})
		require.Error(t, err)
		vErr := err.(*ValidationError)
		require.Contains(t, vErr.Errors, "education[0].institution")
	})

	t.Run(`empty enum is allowed`, func(t *testing.T) {
		err := Struct(payload{Email: "a@b.ru", Position: "Повар"})
		require.NoError(t, err)
	})
}
