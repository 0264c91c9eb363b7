package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"iq-calculator/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Manager coordinates teardown of registered components when the process
// is asked to stop, either by the window closing or by a system signal.
type Manager struct {
	components []Shutdownable
	logger     logger.Logger
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		components: make([]Shutdownable, 0),
		logger:     log,
		done:       make(chan struct{}),
	}
}

func (m *Manager) Register(component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, component)
}

// Listen starts watching for interrupt and termination signals.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		m.Shutdown()
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return // Already shutting down
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	// Shutdown components in reverse registration order
	for i := len(m.components) - 1; i >= 0; i-- {
		m.components[i].Shutdown()
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

// Done is closed once the shutdown sequence has started.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}
