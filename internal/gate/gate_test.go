package gate_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"authgate/internal/authz"
	"authgate/internal/authz/store/memory"
	"authgate/internal/gate"
	"authgate/internal/identity"
	identitymocks "authgate/internal/identity/mocks"
	"authgate/pkg/requestcontext"
)

// =============================================================================
// Gate Test Suite
// =============================================================================
// Justification for unit tests: the gate's verdict shapes are the contract every
// handler depends on. The suite runs the real resolver and checker end to end
// (in-memory store, mocked verifier) to pin the full decision matrix, including
// that a rejected token is indistinguishable from no credential at all.

type GateSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	verifier *identitymocks.MockTokenVerifier
	store    *memory.Store
	logBuf   *bytes.Buffer
	gate     *gate.Gate
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateSuite))
}

func (s *GateSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.verifier = identitymocks.NewMockTokenVerifier(s.ctrl)
	s.store = memory.New()
	s.store.Put("userB", authz.StatusActive)
	s.logBuf = &bytes.Buffer{}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	resolver, err := identity.NewResolver(identity.ContextProvider{}, s.verifier,
		identity.WithLogger(discard))
	s.Require().NoError(err)

	checker, err := authz.NewChecker(authz.NewStaticSet("userA"), s.store,
		authz.WithLogger(slog.New(slog.NewTextHandler(s.logBuf, nil))))
	s.Require().NoError(err)

	s.gate, err = gate.New(resolver, checker, gate.WithLogger(discard))
	s.Require().NoError(err)
}

func (s *GateSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectVerify maps a token to a subject for any number of calls.
func (s *GateSuite) expectVerify(token, subject string) {
	s.verifier.EXPECT().Verify(gomock.Any(), token).Return(
		&identity.TokenIdentity{SubjectID: subject}, nil).AnyTimes()
}

func (s *GateSuite) expectVerifyRejected(token string) {
	s.verifier.EXPECT().Verify(gomock.Any(), token).Return(
		nil, fmt.Errorf("token invalid")).AnyTimes()
}

func bearerHeaders(token string) map[string][]string {
	return map[string][]string{"Authorization": {"Bearer " + token}}
}

func trustedCtx(subject string) context.Context {
	return requestcontext.WithTrustedSubject(context.Background(), subject, "platform")
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *GateSuite) TestNew() {
	resolver, err := identity.NewResolver(identity.ContextProvider{}, s.verifier)
	s.Require().NoError(err)

	s.Run("nil resolver returns error", func() {
		_, err := gate.New(nil, &authz.Checker{})
		s.Error(err)
	})

	s.Run("nil checker returns error", func() {
		_, err := gate.New(resolver, nil)
		s.Error(err)
	})
}

// =============================================================================
// Decision Matrix (static set {userA}, store has active userB)
// =============================================================================

func (s *GateSuite) TestAuthorize() {
	s.Run("trusted identity in static set is allowed", func() {
		verdict := s.gate.Authorize(trustedCtx("userA"), nil)

		s.True(verdict.Allowed)
		s.Require().NotNil(verdict.Identity)
		s.Equal("userA", verdict.Identity.SubjectID)
		s.Empty(verdict.Reason)
	})

	s.Run("bearer identity active in store is allowed", func() {
		s.expectVerify("tok-userB", "userB")

		verdict := s.gate.Authorize(context.Background(), bearerHeaders("tok-userB"))

		s.True(verdict.Allowed)
		s.Require().NotNil(verdict.Identity)
		s.Equal("userB", verdict.Identity.SubjectID)
		s.Empty(verdict.Reason)
	})

	s.Run("resolved identity on no list is denied with not-authorized reason", func() {
		s.expectVerify("tok-userC", "userC")

		verdict := s.gate.Authorize(context.Background(), bearerHeaders("tok-userC"))

		s.False(verdict.Allowed)
		s.Equal(gate.ReasonNotAuthorized, verdict.Reason)
		// Known-but-unauthorized: the identity stays populated.
		s.Require().NotNil(verdict.Identity)
		s.Equal("userC", verdict.Identity.SubjectID)
	})

	s.Run("no credential is denied with unresolved reason", func() {
		verdict := s.gate.Authorize(context.Background(), nil)

		s.False(verdict.Allowed)
		s.Nil(verdict.Identity)
		s.Equal(gate.ReasonIdentityUnresolved, verdict.Reason)
	})

	s.Run("malformed authorization header is denied as unresolved", func() {
		headers := map[string][]string{"Authorization": {"Token abc"}}
		verdict := s.gate.Authorize(context.Background(), headers)

		s.False(verdict.Allowed)
		s.Nil(verdict.Identity)
		s.Equal(gate.ReasonIdentityUnresolved, verdict.Reason)
	})

	s.Run("rejected token verdict is identical to the no-header verdict", func() {
		s.expectVerifyRejected("tok-bad")

		withToken := s.gate.Authorize(context.Background(), bearerHeaders("tok-bad"))
		withoutToken := s.gate.Authorize(context.Background(), nil)

		s.Equal(withoutToken, withToken)
	})
}

// =============================================================================
// Idempotence
// =============================================================================

func (s *GateSuite) TestAuthorizeIdempotent() {
	s.expectVerify("tok-userB", "userB")

	for _, headers := range []map[string][]string{
		nil,
		bearerHeaders("tok-userB"),
	} {
		first := s.gate.Authorize(context.Background(), headers)
		second := s.gate.Authorize(context.Background(), headers)
		s.Equal(first, second)
	}
}

// =============================================================================
// Store Outage (Fail-Closed Fallback)
// =============================================================================

func (s *GateSuite) TestAuthorizeDuringStoreOutage() {
	s.store.FailWith(fmt.Errorf("connection refused"))

	s.Run("non-static subject is denied and outage is observable", func() {
		s.expectVerify("tok-userB", "userB")

		verdict := s.gate.Authorize(context.Background(), bearerHeaders("tok-userB"))

		s.False(verdict.Allowed)
		s.Equal(gate.ReasonNotAuthorized, verdict.Reason)
		s.Contains(s.logBuf.String(), "allowlist_store_degraded")
	})

	s.Run("static subject stays allowed", func() {
		verdict := s.gate.Authorize(trustedCtx("userA"), nil)
		s.True(verdict.Allowed)
	})
}
