package logger

// Nop глушит все сообщения, удобен в тестах.
type Nop struct{}

func NewNop() *Nop {
	return &Nop{}
}

func (n *Nop) Debug(string, ...Field) {}
func (n *Nop) Info(string, ...Field)  {}
func (n *Nop) Warn(string, ...Field)  {}
func (n *Nop) Error(string, ...Field) {}

func (n *Nop) With(...Field) Logger {
	return n
}
