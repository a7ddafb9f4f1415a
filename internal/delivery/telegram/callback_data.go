package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionTraining = "train"
	actionQuiz     = "test"
)

// Training sub-actions.
const (
	trainingCategory = "cat"      // pick a category, param: category index
	trainingNext     = "next"     // advance to the next question
	trainingExamples = "ex"       // reveal English example sentences
	trainingReset    = "reset"    // clear the asked-set of the category
	trainingList     = "list"     // paginated vocabulary list, param: page
	trainingProgress = "progress" // re-render the progress screen
)

// Quiz sub-actions.
const (
	quizToggle = "toggle" // toggle a category in the selection, param: category index
	quizStart  = "start"  // start a run over the selected categories
	quizReset  = "reset"  // replay the same sample from question one
	quizNew    = "new"    // drop the run and pick categories again
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// intParam returns the i-th parameter parsed as a non-negative integer.
func (cd callbackData) intParam(i int) (int, bool) {
	n, err := strconv.Atoi(cd.param(i))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func buildTrainingCallback(sub string, params ...string) string {
	return callbackData{Action: actionTraining, Params: append([]string{sub}, params...)}.encode()
}

func buildQuizCallback(sub string, params ...string) string {
	return callbackData{Action: actionQuiz, Params: append([]string{sub}, params...)}.encode()
}
