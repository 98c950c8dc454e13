package effects

import (
	"math/rand"
	"time"
)

const (
	PopupDuration  = 2 * time.Second
	PopupFadeSpeed = 0.0002 // alpha lost per tick while shown
)

// Attribution is printed under every quote
const Attribution = "- Clint Eastwood"

// Quotes is the fixed phrase set the popup picks from
var Quotes = []string{
	"Go ahead, make my day.",
	"You've got to ask yourself one question: 'Do I feel lucky?' Well, do ya, punk?",
	"A man's got to know his limitations.",
	"I have a very strict gun control policy: if there's a gun around, I want to be in control of it.",
	"Everybody's got a right to be a sucker... once.",
	"If you want a guarantee, buy a toaster.",
	"Sometimes if you want to see a change for the better, you have to take things into your own hands.",
	"I'm not doing it to win an award. I'm doing it because I enjoy it.",
	"There's a rebel lying deep in my soul.",
	"I don't believe in pessimism. If something doesn't come up the way you want, forge ahead.",
	"I tried being reasonable, I didn't like it.",
	"You see, in this world, there's two kinds of people, my friend: those with loaded guns and those who dig. You dig.",
	"Ever notice how you come across somebody once in a while you shouldn't have messed with? That's me.",
	"I have strong feelings about gun control. If there's a gun around, I want to be controlling it.",
	"Improvise, adapt and overcome.",
}

// Popup is the transient quote overlay shown after a point.
//
// It expires on whichever comes first: its remaining duration running out
// or its alpha fading to zero. Both only advance through Update, so a
// paused game freezes the popup as it is.
type Popup struct {
	Active    bool
	Text      string
	Alpha     float64
	remaining time.Duration
	rng       *rand.Rand
}

// NewPopup creates an inactive popup drawing quotes with rng
func NewPopup(rng *rand.Rand) *Popup {
	return &Popup{rng: rng}
}

// Trigger shows a random quote at full opacity. Triggering an active popup
// replaces its text and restarts its duration.
func (p *Popup) Trigger() {
	p.Text = Quotes[p.rng.Intn(len(Quotes))]
	p.Active = true
	p.Alpha = 1
	p.remaining = PopupDuration
}

// Update advances the popup by one tick of length dt
func (p *Popup) Update(dt time.Duration) {
	if !p.Active {
		return
	}

	p.remaining -= dt
	p.Alpha -= PopupFadeSpeed
	if p.remaining <= 0 || p.Alpha <= 0 {
		p.Dismiss()
	}
}

// Remaining returns how long the popup stays up if nothing else hides it
func (p *Popup) Remaining() time.Duration {
	if !p.Active {
		return 0
	}
	return p.remaining
}

// Dismiss hides the popup immediately
func (p *Popup) Dismiss() {
	p.Active = false
	p.remaining = 0
}
