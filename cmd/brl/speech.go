package main

import (
	"context"
	"os/exec"
	"runtime"
	"time"
	"unicode"
)

const (
	LETTER_TIMEOUT = 2 * time.Second
)

// Speaker says one letter aloud and returns once it has been spoken.
type Speaker func(ctx context.Context, letter string) error

func speechCommand(goos, letter string) (string, []string) {
	switch goos {
	case "darwin":
		return "say", []string{"-v", "Thomas", letter}
	case "windows":
		return "powershell", []string{"-Command",
			"Add-Type -AssemblyName System.Speech; " +
				"$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; " +
				"$s.Speak('" + letter + "')"}
	}
	return "espeak", []string{"-v", "fr", letter}
}

func speakLetter(ctx context.Context, letter string) error {
	name, args := speechCommand(runtime.GOOS, letter)
	return exec.CommandContext(ctx, name, args...).Run()
}

// spellable keeps letters and turns anything else into a pause.
func spellable(c rune) string {
	if unicode.IsLetter(c) {
		return string(c)
	}
	return " "
}
