package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrAlreadyRunning indicates another clock window already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	activateCommand = "show"
	requestTimeout  = time.Second
	lockPortBase    = 20000
	lockPortSpan    = 20000
)

// InstanceLock is held by the first running clock. Later launches connect to
// it to bring that clock's window forward.
type InstanceLock struct {
	mu       sync.Mutex
	listener net.Listener
	address  string
}

// AcquireSingleInstance takes the lock for appName.
func AcquireSingleInstance(appName string) (*InstanceLock, error) {
	address := lockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener, address: address}, nil
}

// ActivateRunning asks the instance holding the lock for appName to show itself.
func ActivateRunning(appName string) error {
	address := lockAddress(appName)
	conn, err := net.DialTimeout("tcp", address, requestTimeout)
	if err != nil {
		return fmt.Errorf("dial running instance %s: %w", address, err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(requestTimeout))
	if _, err := fmt.Fprintln(conn, activateCommand); err != nil {
		return fmt.Errorf("send activation: %w", err)
	}
	return nil
}

// Serve calls onActivate for every activation request until the lock is
// released. It blocks, so run it on its own goroutine.
func (lock *InstanceLock) Serve(onActivate func()) {
	listener := lock.currentListener()
	if listener == nil {
		return
	}
	for {
		conn, err := listener.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Warn().Err(err).Msg("instance lock accept")
			}
			return
		}
		if readCommand(conn) == activateCommand && onActivate != nil {
			onActivate()
		}
	}
}

// Release frees the lock and stops Serve. It is safe on a nil lock and
// may be called more than once.
func (lock *InstanceLock) Release() error {
	if lock == nil {
		return nil
	}
	lock.mu.Lock()
	listener := lock.listener
	lock.listener = nil
	lock.mu.Unlock()

	if listener == nil {
		return nil
	}
	return listener.Close()
}

// Address returns the bound address.
func (lock *InstanceLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

func (lock *InstanceLock) currentListener() net.Listener {
	if lock == nil {
		return nil
	}
	lock.mu.Lock()
	defer lock.mu.Unlock()
	return lock.listener
}

func readCommand(conn net.Conn) string {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(requestTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		log.Debug().Err(err).Msg("instance lock read")
		return ""
	}
	return strings.TrimSpace(line)
}

func lockAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
}

// lockPort maps appName onto a fixed port in [20000, 40000).
func lockPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return lockPortBase + int(hash.Sum32()%lockPortSpan)
}
