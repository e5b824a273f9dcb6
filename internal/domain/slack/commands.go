package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdCrew     CommandType = "crew"
	CmdWeek     CommandType = "week"
	CmdHolidays CommandType = "holidays"
	CmdBags     CommandType = "bags"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
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
	case "crew", "bemanning":
		cmd.Type = CmdCrew
	case "week", "vecka":
		cmd.Type = CmdWeek
	case "holidays", "helgdagar":
		cmd.Type = CmdHolidays
	case "bags", "säckar":
		cmd.Type = CmdBags
	case "help", "hjälp":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("okänt kommando: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Tillgängliga kommandon:*

*Bemanning:*
• ` + "`/planering crew BIL [YYYY-MM-DD]`" + ` - Visa vem som kör bilen (idag om datum saknas)
• ` + "`/planering week [YYYY-Www|YYYY-MM-DD]`" + ` - Visa veckans bemanning och jobb

*Kalender:*
• ` + "`/planering holidays [ÅR]`" + ` - Lista svenska helgdagar

*Material:*
• ` + "`/planering bags PROJEKT-ID`" + ` - Visa planerade och använda säckar för ett projekt`
}
