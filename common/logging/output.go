package logging

import (
	"strings"
	"sync"
)

// output defines the log output interface.
type output interface {
	// output outputs the logs.
	output(level level, labelMap labelMap, log string)
}

var (
	defaultOutOnce sync.Once
	defaultOut     *multiOutput
)

// defaultOutput returns the default output.
func defaultOutput() output {
	defaultOutOnce.Do(func() {
		o := multiOutput{}
		if logToStdout {
			o = append(o, Stdout())
		}
		if logToStackdriver {
			o = append(o, Stackdriver())
		}
		defaultOut = &o
	})
	return defaultOut
}

// newMultiOutput returns a multi output.
func newMultiOutput(outputs ...output) output {
	o := multiOutput(outputs)
	o.expand()
	return &o
}

// multiOutput defines the multiple output.
type multiOutput []output

func (o *multiOutput) expand() {
	expanded := multiOutput{}
	for _, sub := range *o {
		if mo, ok := sub.(*multiOutput); ok {
			mo.expand()
			expanded = append(expanded, *mo...)
			continue
		}
		expanded = append(expanded, sub)
	}
	*o = expanded
}

// output outputs the logs.
func (o *multiOutput) output(level level, labelMap labelMap, log string) {
	l := len(*o)
	if l == 0 {
		return
	} else if l == 1 {
		(*o)[0].output(level, labelMap, log)
		return
	}

	var wg sync.WaitGroup
	for _, out := range *o {
		wg.Add(1)
		go func(o output) {
			defer wg.Done()
			o.output(level, labelMap, log)
		}(out)
	}
	wg.Wait()
}

// removeColor returns a new string with color code removed.
func removeColor(s string) string {
	sb := strings.Builder{}
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			for ; i < len(s) && s[i] != 'm'; i++ {
			}
		} else {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
