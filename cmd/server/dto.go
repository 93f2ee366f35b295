package main

import (
	"fmt"

	"github.com/gorilla/schema"
)

type NewGame struct {
	Height    int    `schema:"height,required"`
	Width     int    `schema:"width,required"`
	MineCount int    `schema:"mine_count,required"`
	Seed      uint64 `schema:"seed"`
}

func decodeNewGame(src map[string][]string) (NewGame, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGame
	if err := dec.Decode(&dto, src); err != nil {
		return dto, err
	}
	if dto.Height <= 0 || dto.Width <= 0 {
		return dto, fmt.Errorf("invalid dimensions %dx%d", dto.Height, dto.Width)
	}
	if dto.MineCount < 0 || dto.MineCount > dto.Height*dto.Width {
		return dto, fmt.Errorf("invalid mine count %d", dto.MineCount)
	}
	return dto, nil
}
