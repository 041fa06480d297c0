package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	apiHandler     apiHandler
	topicHandler   topicHandler
	articleHandler articleHandler
	commentHandler commentHandler
	userHandler    userHandler
}
