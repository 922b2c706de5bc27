package assistant

type AssistantContainer struct {
	Handler *Handler
}

func NewAssistantContainer() *AssistantContainer {
	return &AssistantContainer{
		Handler: NewHandler(),
	}
}
