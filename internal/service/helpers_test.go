package service

import (
	"testing"

	"github.com/MKhiriev/go-community-client/internal/adapter"
	"github.com/MKhiriev/go-community-client/internal/config"
	"github.com/MKhiriev/go-community-client/internal/logger"
	"github.com/MKhiriev/go-community-client/internal/mock"
	"go.uber.org/mock/gomock"
)

// actionMatcher matches a single adapter.RequestOption by the action label it
// sets.
type actionMatcher struct {
	action string
}

func (m actionMatcher) Matches(x any) bool {
	opt, ok := x.(adapter.RequestOption)
	if !ok {
		return false
	}
	return adapter.NewRequestOptions(opt).Action == m.action
}

func (m actionMatcher) String() string {
	return "sets action " + m.action
}

func hasAction(action string) gomock.Matcher {
	return actionMatcher{action: action}
}

// newTestServices wires ClientServices onto a mock dispatcher.
func newTestServices(t *testing.T, cfg config.Configuration) (*ClientServices, *mock.MockDispatcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dispatcher := mock.NewMockDispatcher(ctrl)

	return NewClientServices(dispatcher, cfg, logger.Nop()), dispatcher
}
