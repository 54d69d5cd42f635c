package testutil

import (
	"net/http/httptest"
	"testing"

	"learnstyle/internal/soal"
	"learnstyle/internal/stubserver"
)

// StubInstance is a running questionnaire backend for tests.
type StubInstance struct {
	BaseURL string
	Server  *stubserver.Server
	Close   func()
}

// StartStub launches the stub backend on a local listener. It is closed
// automatically when the test ends.
func StartStub(t testing.TB, cfg stubserver.Config) *StubInstance {
	t.Helper()
	stub, err := stubserver.New(cfg)
	if err != nil {
		t.Fatalf("stub server: %v", err)
	}
	server := httptest.NewServer(stub.Handler())
	t.Cleanup(server.Close)
	return &StubInstance{
		BaseURL: server.URL,
		Server:  stub,
		Close:   server.Close,
	}
}

// Client returns a soal client pointed at the stub.
func (s *StubInstance) Client(token, sessionID string) *soal.Client {
	return soal.New(s.BaseURL, soal.Options{Token: token, SessionID: sessionID})
}
