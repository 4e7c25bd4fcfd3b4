package event

import (
	messagebus "github.com/vardius/message-bus"
	"sync"
	"vincit.fi/eink-slideshow/api"
	"vincit.fi/eink-slideshow/common/logger"
)

type Broker struct {
	bus         messagebus.MessageBus
	mux         sync.Mutex
	subscribers map[api.Topic]int
	pending     sync.WaitGroup
	closed      bool

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus:         messagebus.New(queueSize),
		subscribers: map[api.Topic]int{},
	}
}

func (s *Broker) Subscribe(topic api.Topic, handler Handler) {
	s.mux.Lock()
	defer s.mux.Unlock()

	callback := func(command api.Command) {
		defer s.pending.Done()
		logger.Trace.Printf("Handling '%s'", topic)
		handler(command)
	}
	if err := s.bus.Subscribe(string(topic), callback); err != nil {
		logger.Error.Panic("Could not subscribe ", err)
	}
	s.subscribers[topic]++
}

func (s *Broker) SendToTopic(topic api.Topic) {
	s.SendCommandToTopic(topic, &api.EmptyCommand{})
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command api.Command) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		logger.Warn.Printf("Broker closed, dropping '%s'", topic)
		return
	}

	logger.Trace.Printf("Sending command to '%s'", topic)
	// Every subscriber marks its delivery done, so Close can wait for the
	// queues to drain.
	s.pending.Add(s.subscribers[topic])
	s.bus.Publish(string(topic), command)
}

// Close stops accepting commands and waits until every published command
// has been handled.
func (s *Broker) Close() {
	s.mux.Lock()
	s.closed = true
	s.mux.Unlock()

	s.pending.Wait()

	s.mux.Lock()
	defer s.mux.Unlock()
	for topic := range s.subscribers {
		s.bus.Close(string(topic))
	}
	s.subscribers = map[api.Topic]int{}
}
