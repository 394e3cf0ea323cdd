// SPDX-License-Identifier: EPL-2.0

package vizstate

import "sync"

// subscriberBuffer is how many snapshots a subscriber channel holds before
// publishes start dropping for it.
const subscriberBuffer = 1

// Publisher fans Level snapshots out to subscribers. Publish never blocks:
// each subscriber has a small buffered channel and a slow consumer misses
// stale snapshots instead of stalling the producer. Safe for concurrent use.
type Publisher struct {
	mtx    sync.Mutex
	subs   map[chan Level]struct{}
	closed bool
}

func NewPublisher() *Publisher {
	return &Publisher{subs: make(map[chan Level]struct{})}
}

// Subscribe registers a new subscriber and returns its channel along with a
// cancel function. The channel is closed by cancel or by Close.
func (p *Publisher) Subscribe() (<-chan Level, func()) {
	ch := make(chan Level, subscriberBuffer)

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		close(ch)
		return ch, func() {}
	}
	p.subs[ch] = struct{}{}

	cancel := func() {
		p.mtx.Lock()
		defer p.mtx.Unlock()
		if _, ok := p.subs[ch]; ok {
			delete(p.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers level to every subscriber that has room for it.
func (p *Publisher) Publish(level Level) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return
	}
	for ch := range p.subs {
		select {
		case ch <- level:
		default:
			// Subscriber is behind; drop the snapshot for it.
		}
	}
}

// Close closes every subscriber channel. Further publishes are no-ops and
// further subscriptions return closed channels.
func (p *Publisher) Close() {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	for ch := range p.subs {
		close(ch)
	}
	p.subs = nil
}
