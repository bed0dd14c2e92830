package pad

// Command is a text token understood by the controller emulator.
type Command string

// Command tokens
const (
	ButtonA  Command = "Button A"
	HatLeft  Command = "HAT LEFT"
	HatRight Command = "HAT RIGHT"
	Release  Command = "RELEASE"
)

// lineTerminator ends every command on the wire.
const lineTerminator = "\r\n"

// BaudRate is the fixed line speed of the emulator's UART.
const BaudRate = 9600
