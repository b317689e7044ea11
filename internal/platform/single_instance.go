package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	activateCommand = "activate"
	dialTimeout     = 500 * time.Millisecond
)

// InstanceGuard holds the single-instance lock. While served, it turns
// activation requests from later instances into a callback.
type InstanceGuard struct {
	listener net.Listener
	address  string
	logger   logrus.FieldLogger
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
// When the port is taken, the holder is asked to activate and
// ErrAlreadyRunning is returned.
func AcquireSingleInstance(appName string, logger logrus.FieldLogger) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if notifyErr := requestActivation(address); notifyErr != nil {
			logger.WithError(notifyErr).Debug("activation request failed")
		}
		return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{
		listener: listener,
		address:  address,
		logger:   logger.WithField("pkg", "platform"),
	}, nil
}

// Serve accepts activation requests until the guard is released.
// onActivate runs on the accepting goroutine.
func (guard *InstanceGuard) Serve(onActivate func()) {
	if guard == nil || guard.listener == nil {
		return
	}
	go func() {
		for {
			conn, err := guard.listener.Accept()
			if err != nil {
				return
			}
			if guard.readCommand(conn) == activateCommand && onActivate != nil {
				guard.logger.Info("activation requested by another instance")
				onActivate()
			}
		}
	}()
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) readCommand(conn net.Conn) string {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		guard.logger.WithError(err).Debug("read activation request")
		return ""
	}
	return strings.TrimSpace(line)
}

func requestActivation(address string) error {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return fmt.Errorf("dial running instance: %w", err)
	}
	defer conn.Close()
	if _, err := fmt.Fprintln(conn, activateCommand); err != nil {
		return fmt.Errorf("send activation: %w", err)
	}
	return nil
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
