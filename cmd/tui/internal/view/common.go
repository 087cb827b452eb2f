package view

type CommonModel struct {
	Width  int
	Height int
}
