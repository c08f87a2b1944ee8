package localstore

type GetInput struct {
	Key string
}

type GetOutput struct {
	Value string
	Found bool
}

type SetInput struct {
	Key   string
	Value string
}

type RemoveInput struct {
	Key string
}

type ClearInput struct {
}
