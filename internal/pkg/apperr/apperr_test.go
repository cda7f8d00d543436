package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"app error", Forbidden("nope"), KindForbidden},
		{"wrapped app error", fmt.Errorf("ctx: %w", NotFound("gone")), KindNotFound},
		{"record not found", gorm.ErrRecordNotFound, KindNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, KindConflict},
		{"sqlite unique", errors.New("UNIQUE constraint failed: reactions.user_id"), KindConflict},
		{"plain", errors.New("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessage_DoesNotLeakInternalDetail(t *testing.T) {
	err := Internal(errors.New("dial tcp 10.0.0.3:5432: connection refused"))

	assert.Equal(t, "Internal server error", Message(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, "Feed not found", Message(NotFound("Feed not found")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindForbidden))
	assert.Equal(t, http.StatusConflict, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindInternal))
}
