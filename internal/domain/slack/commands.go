package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdList  CommandType = "list"
	CmdToday CommandType = "today"
	CmdShow  CommandType = "show"
	CmdDay   CommandType = "day"
	CmdHelp  CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Arg joins the arguments back together, so day names may contain spaces
func (c *Command) Arg() string {
	return strings.Join(c.Args, " ")
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "list", "ls", "keys":
		cmd.Type = CmdList
	case "today", "preview":
		cmd.Type = CmdToday
	case "show":
		cmd.Type = CmdShow
		if len(cmd.Args) == 0 {
			return nil, fmt.Errorf("missing alias: use `/workout show push1`")
		}
	case "day":
		cmd.Type = CmdDay
		if len(cmd.Args) == 0 {
			return nil, fmt.Errorf("missing day name: use `/workout day Push Day`")
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/workout list`" + ` - List workout aliases (e.g. push1, legs)
• ` + "`/workout today`" + ` - Preview today's workout
• ` + "`/workout show ALIAS`" + ` - Preview the workout behind an alias
• ` + "`/workout day NAME`" + ` - Preview a day by its exact name in the plan
• ` + "`/workout help`" + ` - Show this message

Previews are only visible to you. Nothing is sent to the group from here.`
}
