package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockUserExclusionMutuelle(t *testing.T) {
	const iterations = 200

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := LockUser("user-a")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4*iterations, counter)
}

func TestLockUserIndependantParUtilisateur(t *testing.T) {
	unlockA := LockUser("user-a")
	defer unlockA()

	// le verrou de user-a ne doit pas bloquer user-b
	done := make(chan struct{})
	go func() {
		unlockB := LockUser("user-b")
		unlockB()
		close(done)
	}()

	<-done
}
