package handler

import (
	"github.com/NandhanR354/lifeline/internal/usecase"
)

var (
	authHandler         *AuthHandler
	conversationHandler *ConversationHandler
	moodHandler         *MoodHandler
	helpRequestHandler  *HelpRequestHandler
	treatmentHandler    *TreatmentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	messagingUseCase *usecase.MessagingUseCase,
	moodUseCase *usecase.MoodUseCase,
	helpRequestUseCase *usecase.HelpRequestUseCase,
	treatmentUseCase *usecase.TreatmentUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	conversationHandler = NewConversationHandler(messagingUseCase)
	moodHandler = NewMoodHandler(moodUseCase)
	helpRequestHandler = NewHelpRequestHandler(helpRequestUseCase)
	treatmentHandler = NewTreatmentHandler(treatmentUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetMoodHandler() *MoodHandler {
	return moodHandler
}

func GetHelpRequestHandler() *HelpRequestHandler {
	return helpRequestHandler
}

func GetTreatmentHandler() *TreatmentHandler {
	return treatmentHandler
}
