package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// command is one thing a key press asks of the game.
type command int

const (
	cmdNone command = iota
	cmdLeft
	cmdRight
	cmdRotate
	cmdDrop
	cmdTick
	cmdPause
	cmdRedraw
	cmdNewGame
	cmdQuit
)

// keyBinding ties a key to a command. Order is the order commands apply
// within one Update.
type keyBinding struct {
	key ebiten.Key
	cmd command
}

var bindings = []keyBinding{
	{ebiten.KeyEscape, cmdQuit},
	{ebiten.KeyN, cmdNewGame},
	{ebiten.KeyP, cmdPause},
	{ebiten.KeyR, cmdRedraw},
	{ebiten.KeyArrowLeft, cmdLeft},
	{ebiten.KeyArrowRight, cmdRight},
	{ebiten.KeyArrowUp, cmdRotate},
	{ebiten.KeyArrowDown, cmdDrop},
	{ebiten.KeySpace, cmdTick},
}

// keyPoller turns held-key state into press edges.
type keyPoller struct {
	prev map[ebiten.Key]bool
}

func newKeyPoller() *keyPoller {
	return &keyPoller{prev: make(map[ebiten.Key]bool, len(bindings))}
}

// poll returns the commands whose key went down since the last poll.
func (p *keyPoller) poll(pressed func(ebiten.Key) bool) []command {
	var cmds []command
	for _, b := range bindings {
		down := pressed(b.key)
		if down && !p.prev[b.key] {
			cmds = append(cmds, b.cmd)
		}
		p.prev[b.key] = down
	}
	return cmds
}
