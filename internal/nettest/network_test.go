package nettest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcastRoundTrip(t *testing.T) {
	net := New(3)
	eps := []*Endpoint{net.Endpoint(1), net.Endpoint(2), net.Endpoint(3)}

	ctx := context.Background()
	errs := make(chan error, 3)
	for _, ep := range eps {
		ep := ep
		go func() {
			errs <- ep.SendToAll(ctx, []string{"h1"}, []string{fmt.Sprintf("v%d", ep.GetMyID())})
		}()
	}
	for range eps {
		require.NoError(t, <-errs)
	}

	for _, ep := range eps {
		contributions, err := ep.RecvFromAll(ctx, "h1")
		require.NoError(t, err)
		require.Len(t, contributions, 2)
		for _, c := range contributions {
			require.NotEqual(t, ep.GetMyID(), c.SenderID)
		}
	}
}

func TestSinglePartyRecvIsNoOp(t *testing.T) {
	net := New(1)
	ep := net.Endpoint(1)
	contributions, err := ep.RecvFromAll(context.Background(), "anything")
	require.NoError(t, err)
	require.Empty(t, contributions)
}
