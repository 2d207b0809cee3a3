package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotify_WritesOneLine(t *testing.T) {
	var out bytes.Buffer
	n := New(&out)

	n.Notify(Success, "Exported %d entries", 3)
	assert.Contains(t, out.String(), "Exported 3 entries")
	assert.Equal(t, byte('\n'), out.Bytes()[out.Len()-1])
}

func TestNotify_UnknownLevelFallsBack(t *testing.T) {
	var out bytes.Buffer
	n := New(&out)

	n.Notify(Level(99), "still printed")
	assert.Contains(t, out.String(), "still printed")
}

func TestNotifyAfter_FiresLater(t *testing.T) {
	var out bytes.Buffer
	n := New(&out)

	timer := n.NotifyAfter(10*time.Millisecond, Warning, "deferred advisory")
	defer timer.Stop()

	assert.NotContains(t, out.String(), "deferred advisory")
	assert.Eventually(t, func() bool {
		n.mu.Lock()
		defer n.mu.Unlock()
		return bytes.Contains(out.Bytes(), []byte("deferred advisory"))
	}, time.Second, 5*time.Millisecond)
}

func TestNotifyAfter_StopPreventsFiring(t *testing.T) {
	var out bytes.Buffer
	n := New(&out)

	timer := n.NotifyAfter(50*time.Millisecond, Info, "should not appear")
	timer.Stop()

	time.Sleep(100 * time.Millisecond)
	n.mu.Lock()
	defer n.mu.Unlock()
	assert.NotContains(t, out.String(), "should not appear")
}
