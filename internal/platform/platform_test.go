package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceLock(t *testing.T) {
	name := "zoneclock-test-" + t.Name()
	lock, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, lockAddress(name), lock.Address())

	_, err = AcquireSingleInstance(name)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, lock.Release())
	require.NoError(t, lock.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}

func TestActivateRunningReachesLockHolder(t *testing.T) {
	name := "zoneclock-test-" + t.Name()
	lock, err := AcquireSingleInstance(name)
	require.NoError(t, err)

	activated := make(chan struct{}, 1)
	served := make(chan struct{})
	go func() {
		defer close(served)
		lock.Serve(func() { activated <- struct{}{} })
	}()

	require.NoError(t, ActivateRunning(name))
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}

	require.NoError(t, lock.Release())
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after release")
	}

	assert.Error(t, ActivateRunning(name))
}

func TestNilLock(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
	assert.Empty(t, lock.Address())
	lock.Serve(func() { t.Fatal("nil lock must not activate") })
}

func TestLockPortIsStableAndInRange(t *testing.T) {
	port := lockPort("ZoneClock")
	assert.Equal(t, port, lockPort("ZoneClock"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.Less(t, port, 40000)
}

func TestConfigDirOverride(t *testing.T) {
	dir, err := NewService("/srv/zoneclock").GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/zoneclock", dir)
}

func TestConfigDirFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	dir, err := NewService("").GetConfigDir()
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}
