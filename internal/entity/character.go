package entity

import "github.com/wyrmsheet/backend/pkg/enum"

type Alignment string

var (
	LawfulGood     = enum.New(Alignment("lawful_good"), "Lawful Good")
	NeutralGood    = enum.New(Alignment("neutral_good"), "Neutral Good")
	ChaoticGood    = enum.New(Alignment("chaotic_good"), "Chaotic Good")
	LawfulNeutral  = enum.New(Alignment("lawful_neutral"), "Lawful Neutral")
	TrueNeutral    = enum.New(Alignment("true_neutral"), "True Neutral")
	ChaoticNeutral = enum.New(Alignment("chaotic_neutral"), "Chaotic Neutral")
	LawfulEvil     = enum.New(Alignment("lawful_evil"), "Lawful Evil")
	NeutralEvil    = enum.New(Alignment("neutral_evil"), "Neutral Evil")
	ChaoticEvil    = enum.New(Alignment("chaotic_evil"), "Chaotic Evil")
)

var Alignments = []Alignment{
	LawfulGood, NeutralGood, ChaoticGood,
	LawfulNeutral, TrueNeutral, ChaoticNeutral,
	LawfulEvil, NeutralEvil, ChaoticEvil,
}

type Character struct {
	Base
	UserID    string `gorm:"index"`
	Name      string
	Alignment Alignment `gorm:"default:true_neutral"`
}
