// Package marketdata shows a flyweight quote whose companion is generated by
// reusablegen.
package marketdata

import "fmt"

//go:generate go run github.com/cmmoran/reusablegen generate -i .

// Quote is a simple top-of-book quote. Only the tagged fields are cleared and
// copied by ReusableQuote; venue is left alone.
type Quote struct {
	instrumentId int64 `reusable:""`
	bidPrice     int64 `reusable:""`
	askPrice     int64 `reusable:""`
	bidQty       int64 `reusable:""`
	askQty       int64 `reusable:""`
	timeStamp    int64 `reusable:""`

	venue string
}

// Set fills every tracked field in one call.
func (q *Quote) Set(instrumentId, bidPrice, askPrice, bidQty, askQty, timeStamp int64) {
	q.instrumentId = instrumentId
	q.bidPrice = bidPrice
	q.askPrice = askPrice
	q.bidQty = bidQty
	q.askQty = askQty
	q.timeStamp = timeStamp
}

func (q *Quote) SetVenue(venue string) { q.venue = venue }

func (q *Quote) InstrumentID() int64 { return q.instrumentId }
func (q *Quote) BidPrice() int64     { return q.bidPrice }
func (q *Quote) AskPrice() int64     { return q.askPrice }
func (q *Quote) TimeStamp() int64    { return q.timeStamp }
func (q *Quote) Venue() string       { return q.venue }

func (q *Quote) String() string {
	return fmt.Sprintf("%d %d@%d/%d@%d t=%d", q.instrumentId, q.bidQty, q.bidPrice, q.askQty, q.askPrice, q.timeStamp)
}
