package handlers

import (
	profileRepoPkg "expertly/database/repository/profile"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	ProfileRepo profileRepoPkg.ProfileRepository

	Account   *AccountHandler
	Expert    *ExpertHandler
	Session   *SessionHandler
	Messaging *MessagingHandler
	Access    *AccessHandler
}
