package devtools

import (
	"fmt"
	"io"
	"strings"

	engineinput "blockfall/pkg/engine/input"
)

// boundActions is the order actions are listed in
var boundActions = []engineinput.Action{
	engineinput.ActionMoveLeft,
	engineinput.ActionMoveRight,
	engineinput.ActionRotate,
	engineinput.ActionQuit,
}

// WriteBindings lists every action with the codes currently bound to it
func WriteBindings(w io.Writer) {
	byAction := engineinput.GetBindingsByAction()
	for _, action := range boundActions {
		codes := strings.Join(byAction[action], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		fmt.Fprintf(w, "%-12s %s\n", engineinput.ActionName(action)+":", codes)
	}
}
