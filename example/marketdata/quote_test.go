package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(id int64) *ReusableQuote {
	r := NewReusableQuote()
	r.Build().Set(id, 101, 102, 5, 7, 1_700_000_000)
	r.Build().SetVenue("XLON")
	return r
}

func TestBuildReturnsLiveInstance(t *testing.T) {
	r := NewReusableQuote()
	q := r.Build()
	q.Set(1, 2, 3, 4, 5, 6)
	assert.Same(t, q, r.Build())
	assert.Equal(t, int64(2), r.Build().BidPrice())
}

func TestClear(t *testing.T) {
	r := filled(42)
	r.Clear()

	q := r.Build()
	assert.Equal(t, Quote{venue: "XLON"}, *q, "tracked fields zeroed, venue untouched")
}

func TestCopyFrom(t *testing.T) {
	src := filled(42)
	dst := NewReusableQuote()
	dst.Build().SetVenue("XNYS")

	dst.CopyFrom(src)

	assert.Equal(t, int64(42), dst.Build().InstrumentID())
	assert.Equal(t, int64(102), dst.Build().AskPrice())
	assert.Equal(t, int64(1_700_000_000), dst.Build().TimeStamp())
	assert.Equal(t, "XNYS", dst.Build().Venue(), "untracked field not copied")
	assert.Equal(t, "XLON", src.Build().Venue(), "source untouched")
	assert.NotSame(t, src.Build(), dst.Build())
}

func TestClearThenCopyFromRoundTrip(t *testing.T) {
	for _, id := range []int64{0, 1, -1, 1 << 62} {
		x := filled(id)
		r := filled(id + 1)
		r.Build().SetVenue("")

		r.Clear()
		r.CopyFrom(x)

		want := *x.Build()
		want.venue = ""
		require.Equal(t, want, *r.Build())
	}
}
