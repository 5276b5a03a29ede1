package tui

type TitleWrittenMsg struct {
	Index int
	Error error
}

type ReviewCompleteMsg struct{}
