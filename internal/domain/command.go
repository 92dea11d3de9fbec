package domain

// CommandType tags the two statement shapes of the language.
type CommandType string

const (
	CommandAction CommandType = "action"
	CommandDetect CommandType = "detect"
)

// Command is either an ActionCommand or a DetectCommand.
type Command interface {
	Type() CommandType
}

// ActionCommand is an ENCRIPTAR/DESENCRIPTAR statement.
type ActionCommand struct {
	Verb   Verb
	Text   string
	Method Method
	Key    Key
}

func (ActionCommand) Type() CommandType {
	return CommandAction
}

// DetectCommand is a DETECTAR statement.
type DetectCommand struct {
	Text string
}

func (DetectCommand) Type() CommandType {
	return CommandDetect
}
