package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"authgate/internal/authz"
	"authgate/internal/authz/store/memory"
	"authgate/internal/gate"
	"authgate/internal/identity"
	identitymocks "authgate/internal/identity/mocks"
	httptransport "authgate/internal/transport/http"
)

// =============================================================================
// Transport Test Suite
// =============================================================================
// Justification: exercises the full chain as deployed - router, trusted-context
// and gate middleware, protected handler - against a real gate with an
// in-memory store, so routing and response shapes stay pinned.

type TransportSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	verifier *identitymocks.MockTokenVerifier
	router   http.Handler
}

func TestTransportSuite(t *testing.T) {
	suite.Run(t, new(TransportSuite))
}

func (s *TransportSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.verifier = identitymocks.NewMockTokenVerifier(s.ctrl)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.New()
	store.Put("userB", authz.StatusActive)

	resolver, err := identity.NewResolver(identity.ContextProvider{}, s.verifier,
		identity.WithLogger(log))
	s.Require().NoError(err)

	checker, err := authz.NewChecker(authz.NewStaticSet("userA"), store,
		authz.WithLogger(log))
	s.Require().NoError(err)

	authGate, err := gate.New(resolver, checker, gate.WithLogger(log))
	s.Require().NoError(err)

	handler := httptransport.NewHandler(log)
	s.router = handler.NewRouter(httptransport.RouterConfig{
		Authorizer:           authGate,
		TrustedSubjectHeader: "X-Platform-Subject",
		TrustedIssuer:        "platform",
	})
}

func (s *TransportSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransportSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TransportSuite) TestPublicEndpoints() {
	s.Run("healthz needs no credential", func() {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("metrics needs no credential", func() {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *TransportSuite) TestProtectedData() {
	s.Run("platform-authenticated static subject gets data", func() {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("X-Platform-Subject", "userA")

		rec := s.do(req)
		s.Require().Equal(http.StatusOK, rec.Code)

		var body map[string]string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("userA", body["subject"])
	})

	s.Run("bearer subject active in store gets data", func() {
		s.verifier.EXPECT().Verify(gomock.Any(), "tok-userB").Return(
			&identity.TokenIdentity{SubjectID: "userB"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("Authorization", "Bearer tok-userB")

		rec := s.do(req)
		s.Require().Equal(http.StatusOK, rec.Code)

		var body map[string]string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("userB", body["subject"])
	})

	s.Run("no credential gets 401 with unresolved reason", func() {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/data", nil))
		s.Require().Equal(http.StatusUnauthorized, rec.Code)

		var body map[string]string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(gate.ReasonIdentityUnresolved, body["error_description"])
	})

	s.Run("unlisted subject gets 401 with not-authorized reason", func() {
		req := httptest.NewRequest(http.MethodGet, "/data", nil)
		req.Header.Set("X-Platform-Subject", "userC")

		rec := s.do(req)
		s.Require().Equal(http.StatusUnauthorized, rec.Code)

		var body map[string]string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(gate.ReasonNotAuthorized, body["error_description"])
	})

	s.Run("responses carry a request ID header", func() {
		rec := s.do(httptest.NewRequest(http.MethodGet, "/data", nil))
		s.NotEmpty(rec.Header().Get("X-Request-Id"))
	})
}
