package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/fudanchii/brl/internal/braille"
	"github.com/fudanchii/brl/internal/display"
	"github.com/fudanchii/brl/internal/driver"
	"github.com/fudanchii/brl/internal/kickstart"
	"github.com/fudanchii/brl/internal/link"
	"github.com/fudanchii/brl/internal/logger"
)

const (
	CMD_PROMPT = "braille> "
)

var (
	ErrInvalidGPIOList = errors.New("config: error, --gpio needs 8 comma separated BCM pin numbers")
)

type configStruct struct {
	sendTo    string
	baudRate  int
	ackWait   time.Duration
	gpio      string
	dryRun    bool
	polarity  string
	hold      time.Duration
	width     int
	overflow  string
	logFile   string
	debug     bool
	help      bool
}

var (
	config = configStruct{
		baudRate: link.DEFAULT_BAUD_RATE,
		ackWait:  link.DEFAULT_ACK_TIMEOUT,
		polarity: "high",
		hold:     500 * time.Millisecond,
		width:    display.DEFAULT_WIDTH,
		overflow: "wrap",
	}
)

func init() {
	getopt.FlagLong(&config.sendTo, "send", 's', "Serial device of the relay board, e.g. /dev/ttyACM0.")
	getopt.FlagLong(&config.baudRate, "baud", 'b', "Baud rate for the serial line.")
	getopt.FlagLong(&config.ackWait, "ack-timeout", 0, "How long to wait for the board to acknowledge a character.")
	getopt.FlagLong(&config.gpio, "gpio", 'g', "Drive 8 local BCM GPIO pins (pin0..pin7), e.g. 17,27,22,5,6,13,19,26.")
	getopt.FlagLong(&config.dryRun, "dry-run", 'n', "Drive 8 virtual lines and log them instead of GPIO.")
	getopt.FlagLong(&config.polarity, "polarity", 'P', "Output line polarity: high, or low for most relay boards.")
	getopt.FlagLong(&config.hold, "hold", 0, "How long each cell is held on the lines before they rest.")
	getopt.FlagLong(&config.width, "width", 'w', "Number of cells on the display line.")
	getopt.FlagLong(&config.overflow, "overflow", 'o', "Overflow style when a line is longer than the display: wrap, trim or marquee.")
	getopt.FlagLong(&config.logFile, "log", 'l', "Log file.")
	getopt.FlagLong(&config.debug, "debug", 'd', "Log debug to console.")
	getopt.FlagLong(&config.help, "help", 'h', "Help.")
	getopt.SetParameters("[texte ...]")
}

type AppHandler struct {
	line    *liner.State
	session *session
	closers []io.Closer
	logger  *slog.Logger
}

func main() {
	err := kickstart.Init(setupFn).
		Loop(runFn).
		Then(shutdownFn).
		Exec()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		os.Exit(1)
	}
}

func parsePins(list string) ([braille.PinCount]int, error) {
	var pins [braille.PinCount]int

	fields := strings.Split(list, ",")
	if len(fields) != braille.PinCount {
		return pins, ErrInvalidGPIOList
	}

	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return pins, fmt.Errorf("%w: %q", ErrInvalidGPIOList, f)
		}
		pins[i] = n
	}

	return pins, nil
}

func newLogger() (*slog.Logger, io.Closer, error) {
	var (
		file   io.Writer
		closer io.Closer
	)

	if config.logFile != "" {
		f, err := os.Create(config.logFile)
		if err != nil {
			return nil, nil, err
		}
		file, closer = f, f
	}

	level := slog.LevelInfo
	if config.debug || config.logFile != "" {
		level = slog.LevelDebug
	}

	return slog.New(logger.NewHandler(file, os.Stderr, level, config.debug)), closer, nil
}

func setupFn(kctx *kickstart.Context[AppHandler]) error {
	getopt.Parse()

	if config.help {
		getopt.Usage()
		os.Exit(0)
	}

	log, logCloser, err := newLogger()
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	app := AppHandler{logger: log}
	if logCloser != nil {
		app.closers = append(app.closers, logCloser)
	}

	style, err := display.ParseOverflowStyle(config.overflow)
	if err != nil {
		return err
	}

	buffer, err := display.NewBuffer(config.width, style)
	if err != nil {
		return err
	}

	sess := &session{
		out:    os.Stdout,
		buffer: buffer,
		speak:  speakLetter,
		logger: log,
		now:    time.Now,
	}

	if config.sendTo != "" {
		l, err := link.Open(config.sendTo, config.baudRate, config.ackWait, log)
		if err != nil {
			return err
		}
		app.closers = append(app.closers, l)
		sess.sender = l
		log.Info("relay board connected", "device", config.sendTo, "baud", config.baudRate)
	}

	if config.gpio != "" || config.dryRun {
		d, closer, err := openDriver(log)
		if err != nil {
			return err
		}
		if closer != nil {
			app.closers = append(app.closers, closer)
		}
		sess.shower = d
	}

	app.session = sess

	if args := getopt.Args(); len(args) > 0 {
		if _, err := sess.handle(strings.Join(args, " ")); err != nil {
			return err
		}
		kctx.AppHandler = app
		kctx.Break()
		return nil
	}

	app.line = liner.NewLiner()
	app.line.SetCtrlCAborts(true)
	app.line.SetCompleter(func(line string) []string {
		matches := []string{}
		for _, c := range commands {
			if strings.HasPrefix(c, line) {
				matches = append(matches, c)
			}
		}
		return matches
	})

	fmt.Println("=== Traducteur Français → Braille (8 pins) ===")
	fmt.Println("Convention : 0 = down, 1 = up")
	fmt.Println("Format sortie : [pin0, pin1, pin2, pin3, pin4, pin5, pin6, pin7]")
	fmt.Println()

	kctx.AppHandler = app

	return nil
}

func openDriver(log *slog.Logger) (*driver.Driver, io.Closer, error) {
	polarity, err := driver.ParsePolarity(config.polarity)
	if err != nil {
		return nil, nil, err
	}
	cfg := driver.Config{Polarity: polarity, Hold: config.hold}

	if config.dryRun {
		board := driver.NewVirtualBoard(log)
		d, err := driver.New(board.Lines(), cfg, driver.WithLogger(log))
		if err != nil {
			return nil, nil, err
		}
		logDriver(log, "virtual lines ready", d)
		return d, nil, nil
	}

	pins, err := parsePins(config.gpio)
	if err != nil {
		return nil, nil, err
	}

	board, err := driver.OpenRPi(pins)
	if err != nil {
		return nil, nil, err
	}

	d, err := driver.New(board.Lines(), cfg, driver.WithLogger(log))
	if err != nil {
		board.Close()
		return nil, nil, err
	}

	logDriver(log, "gpio lines ready", d, "pins", config.gpio)

	return d, board, nil
}

func logDriver(log *slog.Logger, msg string, d *driver.Driver, args ...any) {
	cfg := d.Config()
	log.Info(msg, append(args, "polarity", cfg.Polarity.String(), "hold", cfg.Hold)...)
}

func runFn(kctx *kickstart.Context[AppHandler]) error {
	if kctx.AppHandler.line == nil {
		kctx.Break()
		return nil
	}

	input, err := kctx.AppHandler.line.Prompt(CMD_PROMPT)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			kctx.Break()
			return nil
		}
		return err
	}

	if strings.TrimSpace(input) != "" {
		kctx.AppHandler.line.AppendHistory(input)
	}

	quit, err := kctx.AppHandler.session.handle(input)
	if err != nil {
		fmt.Println("Error: " + err.Error())
		if errors.Is(err, link.ErrNoAck) {
			kctx.AppHandler.logger.Error("relay board stopped answering", "error", err)
		}
	}

	if quit {
		kctx.Break()
	}

	return nil
}

func shutdownFn(kctx *kickstart.Context[AppHandler]) error {
	if kctx.AppHandler.line != nil {
		kctx.AppHandler.line.Close()
	}

	errs := []error{}
	for i := len(kctx.AppHandler.closers) - 1; i >= 0; i-- {
		errs = append(errs, kctx.AppHandler.closers[i].Close())
	}

	return errors.Join(errs...)
}
