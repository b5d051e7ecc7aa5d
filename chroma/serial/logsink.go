package serial

import (
	"io"
	"log/slog"

	"github.com/calvelli/go-chroma/chroma/addr"
	"github.com/calvelli/go-chroma/chroma/bit"
)

// LogSink is a dummy link-port peer that logs outgoing bytes as text. Handy
// for test ROMs that report results over serial.
type LogSink struct {
	irqHandler     func()
	sb, sc         byte
	transferActive bool
	countdown      int
	logger         *slog.Logger

	immediate bool
	defaultRX byte // value left in SB when no peer answered

	out  io.Writer
	line []byte
}

type LogSinkOption func(*LogSink)

// WithFixedTiming completes transfers after the ~4096-cycle bit clock of the
// original hardware instead of immediately.
func WithFixedTiming() LogSinkOption {
	return func(s *LogSink) { s.immediate = false }
}

// WithWriter mirrors every transferred byte into w, for harnesses that
// capture serial output directly.
func WithWriter(w io.Writer) LogSinkOption {
	return func(s *LogSink) { s.out = w }
}

// NewLogSink creates the sink. irq is called when a transfer completes and
// should request the Serial interrupt.
func NewLogSink(irq func(), opts ...LogSinkOption) *LogSink {
	s := &LogSink{
		irqHandler: irq,
		immediate:  true,
		defaultRX:  0xFF,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.maybeStartTransfer()
	}
}

func (s *LogSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return 0x7E | (s.sc & 0x81)
	}
	return 0xFF
}

func (s *LogSink) Tick(cycles int) {
	if s.immediate || !s.transferActive {
		return
	}
	s.countdown -= cycles
	if s.countdown <= 0 {
		s.completeTransfer()
		s.countdown = 0
	}
}

func (s *LogSink) maybeStartTransfer() {
	if s.transferActive {
		return
	}
	// Bit 7 starts a transfer, bit 0 selects the internal clock; without a
	// peer only internally clocked transfers ever finish.
	if !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}

	b := s.sb
	if s.out != nil {
		_, _ = s.out.Write([]byte{b})
	}
	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			s.logger.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
	} else {
		s.line = append(s.line, b)
	}

	if s.immediate {
		s.completeTransfer()
		return
	}

	s.transferActive = true
	s.countdown = 4096
}

func (s *LogSink) completeTransfer() {
	s.sb = s.defaultRX
	s.sc = bit.Reset(7, s.sc)
	s.transferActive = false
	if s.irqHandler != nil {
		s.irqHandler()
	}
}
