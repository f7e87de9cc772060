package helper

import (
	"sync"
	"testing"
)

func TestLockUserDayMutualExclusion(t *testing.T) {
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := LockUserDay(1, "2025-03-10")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d; want 50", counter)
	}
}

func TestLockUserDayIndependentKeys(t *testing.T) {
	// Kunci (user, hari) lain tidak boleh saling blok
	unlockA := LockUserDay(1, "2025-03-10")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := LockUserDay(2, "2025-03-10")
		unlockB()
		unlockC := LockUserDay(1, "2025-03-11")
		unlockC()
		close(done)
	}()

	<-done
}

func TestLockUserDayCleansUp(t *testing.T) {
	unlock := LockUserDay(99, "2025-03-10")
	unlock()

	dayLocksMu.Lock()
	_, exists := dayLocks["99:2025-03-10"]
	dayLocksMu.Unlock()
	if exists {
		t.Error("entry lock harus dihapus setelah tidak ada yang menunggu")
	}
}
