package session

// CommandKind enumerates the inputs the session understands.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdQuit
	CmdSave
	CmdPrevious
	CmdNext
	CmdClassifyTrue
	CmdClassifyFalse
	CmdSelectOption
)

// Command is one input fed to Apply. Symbol is only meaningful for
// CmdSelectOption.
type Command struct {
	Kind   CommandKind
	Symbol string
}

func Quit() Command          { return Command{Kind: CmdQuit} }
func Save() Command          { return Command{Kind: CmdSave} }
func Previous() Command      { return Command{Kind: CmdPrevious} }
func Next() Command          { return Command{Kind: CmdNext} }
func ClassifyTrue() Command  { return Command{Kind: CmdClassifyTrue} }
func ClassifyFalse() Command { return Command{Kind: CmdClassifyFalse} }

// SelectOption returns a command choosing the option bound to symbol.
func SelectOption(symbol string) Command {
	return Command{Kind: CmdSelectOption, Symbol: symbol}
}

// Unknown wraps an input that maps to no command.
func Unknown(symbol string) Command {
	return Command{Kind: CmdUnknown, Symbol: symbol}
}

// applicable lists which commands each mode acts on. Anything missing is a no-op.
var applicable = map[Mode]map[CommandKind]bool{
	ModeClassify: {
		CmdQuit:          true,
		CmdSave:          true,
		CmdPrevious:      true,
		CmdNext:          true,
		CmdClassifyTrue:  true,
		CmdClassifyFalse: true,
	},
	ModeAnswer: {
		CmdQuit:         true,
		CmdSave:         true,
		CmdPrevious:     true,
		CmdNext:         true,
		CmdSelectOption: true,
	},
}

// Applies reports whether cmd has any effect in mode.
func Applies(mode Mode, kind CommandKind) bool {
	return applicable[mode][kind]
}
