package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximuscb/APOS-sub001/src/session/domain/entity"
)

func TestRegisterClientListRegisters(t *testing.T) {
	storeID := uuid.New()
	ownerID := uuid.New()
	takenID := uuid.New()
	sessionID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/registers", r.URL.Path)
		assert.Equal(t, storeID.String(), r.URL.Query().Get("store_id"))
		assert.Equal(t, storeID.String(), r.Header.Get("X-Store-ID"))

		fmt.Fprintf(w, `{"registers":[
			{"id":"%s","number":1,"name":"Caja 1","current_session":null},
			{"id":"%s","number":2,"name":"Caja 2","current_session":{"id":"%s","status":"OPEN","user_id":"%s"}}
		]}`, uuid.New(), takenID, sessionID, ownerID)
	}))
	defer server.Close()

	c := NewRegisterClient(server.URL)
	registers, err := c.ListRegisters(context.Background(), storeID, "")

	require.NoError(t, err)
	require.Len(t, registers, 2)

	assert.Nil(t, registers[0].CurrentSession)
	require.NotNil(t, registers[1].CurrentSession)
	assert.Equal(t, sessionID, registers[1].CurrentSession.ID)
	assert.Equal(t, ownerID, registers[1].CurrentSession.UserID)
	assert.Equal(t, takenID, registers[1].CurrentSession.RegisterID)
	assert.Equal(t, entity.SessionStatusOpen, registers[1].CurrentSession.Status)
}

func TestRegisterClientOpenShift(t *testing.T) {
	storeID := uuid.New()
	registerID := uuid.New()
	userID := uuid.New()
	sessionID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/v1/registers/%s/shifts", registerID), r.URL.Path)

		var req openShiftRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, userID, req.UserID)
		assert.Equal(t, "100", req.OpeningCash.String())

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"session_id":"%s","register_number":3}`, sessionID)
	}))
	defer server.Close()

	c := NewRegisterClient(server.URL)
	session, err := c.OpenShift(context.Background(), storeID, registerID, userID, mustDecimal(t, "100"), "")

	require.NoError(t, err)
	assert.Equal(t, sessionID, session.ID)
	assert.Equal(t, registerID, session.RegisterID)
	assert.Equal(t, 3, session.RegisterNumber)
	assert.Equal(t, entity.SessionStatusOpen, session.Status)
}

func TestRegisterClientOpenShiftConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error":"register already in use"}`)
	}))
	defer server.Close()

	c := NewRegisterClient(server.URL)
	_, err := c.OpenShift(context.Background(), uuid.New(), uuid.New(), uuid.New(), mustDecimal(t, "0"), "")

	assert.ErrorIs(t, err, entity.ErrRegisterInUse)
}

func TestRegisterClientCloseShiftWithNullExpected(t *testing.T) {
	sessionID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/api/v1/shift-sessions/%s/close", sessionID), r.URL.Path)
		fmt.Fprint(w, `{"closing_cash":"80.00","expected_cash":null,"variance":null,"closed_at":"2026-08-30T12:00:00Z"}`)
	}))
	defer server.Close()

	c := NewRegisterClient(server.URL)
	result, err := c.CloseShift(context.Background(), uuid.New(), sessionID, mustDecimal(t, "80.00"), "caja sin esperado", "")

	require.NoError(t, err)
	assert.Nil(t, result.ExpectedCash)
	assert.Nil(t, result.Variance)
	assert.Equal(t, entity.VarianceUnknown, result.Direction())
	assert.Equal(t, "caja sin esperado", result.Notes)
}

func TestRegisterClientCloseShiftNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewRegisterClient(server.URL)
	_, err := c.CloseShift(context.Background(), uuid.New(), uuid.New(), mustDecimal(t, "0"), "", "")

	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
