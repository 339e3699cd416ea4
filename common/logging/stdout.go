package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ttacon/chalk"

	"github.com/kwenta/futures-data-watcher/env"
)

// TimeFormat is the timestamp layout of stdout entries.
const TimeFormat = "2006-01-02 15:04:05.000"

var (
	styleMap = map[level]chalk.Style{
		debugLevel:    chalk.ResetColor.NewStyle(),
		infoLevel:     chalk.Green.NewStyle(),
		noticeLevel:   chalk.Cyan.NewStyle(),
		warnLevel:     chalk.Yellow.NewStyle(),
		errorLevel:    chalk.Red.NewStyle(),
		criticalLevel: chalk.Magenta.NewStyle(),
	}

	timeStyle = chalk.ResetColor.NewStyle().WithTextStyle(chalk.Inverse)
	tagStyle  = chalk.ResetColor.NewStyle().WithBackground(chalk.Blue)

	stdoutOnce sync.Once
	stdout     *stdOutput
)

// Stdout returns the stdout output.
func Stdout() output {
	stdoutOnce.Do(func() {
		stdout = newStdOutput()
	})
	return stdout
}

type stdOutput struct {
	sync.Mutex

	writer    io.Writer
	withColor bool
}

// assertOutputInterface
func _() {
	var _ output = (*stdOutput)(nil)
}

func newStdOutput() *stdOutput {
	return &stdOutput{
		writer:    os.Stdout,
		withColor: !env.IsCI(),
	}
}

func (o *stdOutput) output(level level, labelMap labelMap, log string) {
	tsRaw := time.Now().Format(TimeFormat)
	svRaw := fmt.Sprintf("%6s", level.String())
	tagRaw := fmt.Sprintf("%16s", labelMap[LabelTag])

	var b []byte
	if !o.withColor {
		if level <= errorLevel {
			log = fmt.Sprintf("%s: %s", labelMap.debugInfo(false), log)
		}
		log = removeColor(log)
		b = []byte(fmt.Sprintf("%s %s %s %s", tsRaw, svRaw, tagRaw, log))
	} else {
		if level <= errorLevel {
			log = fmt.Sprintf("%s: %s", labelMap.debugInfo(true), log)
		}
		timestamp := timeStyle.Style(tsRaw)
		severity := styleMap[level].Style(svRaw)
		tag := tagStyle.Style(tagRaw)
		b = []byte(fmt.Sprintf("%s %s %s %s", timestamp, severity, tag, log))
	}

	o.Lock()
	_, _ = o.writer.Write(b)
	o.Unlock()
}
