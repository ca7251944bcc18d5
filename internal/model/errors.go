package model

import "errors"

// Model errors
var (
	ErrUnknownSkill        = errors.New("unknown skill")
	ErrAdventurerRequired  = errors.New("adventurer is required")
	ErrAdventurerNotFound  = errors.New("adventurer not found in guild")
	ErrAdventurerNameEmpty = errors.New("adventurer name is required")
)
