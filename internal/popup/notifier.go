package popup

import "github.com/dmitrijs2005/mesto-client/internal/routes"

// UI strings shown in the info tooltip.
const (
	MsgRegisterSuccess = "Вы успешно зарегистрировались!"
	MsgGenericFailure  = "Что-то пошло не так! Попробуйте ещё раз."
)

// Notifier maps terminal outcomes of auth and mutation calls to info-tooltip
// transitions. It is a stateless layer over the Controller; navigation side
// effects go through the injected navigate callback.
type Notifier struct {
	popups   *Controller
	navigate func(path string)
}

// NewNotifier builds a Notifier. navigate may be nil when the caller has no
// routing (e.g. in tests).
func NewNotifier(popups *Controller, navigate func(path string)) *Notifier {
	return &Notifier{popups: popups, navigate: navigate}
}

// RegisterOutcome reports the result of a registration attempt. Success
// shows a positive tooltip and sends the user to the login screen; failure
// shows the generic failure tooltip.
func (n *Notifier) RegisterOutcome(err error) {
	if err != nil {
		n.popups.OpenInfoTooltip(Tooltip{Icon: IconFail, Message: MsgGenericFailure})
		return
	}
	n.popups.OpenInfoTooltip(Tooltip{Icon: IconSuccess, Message: MsgRegisterSuccess})
	if n.navigate != nil {
		n.navigate(routes.PathSignIn)
	}
}

// LoginOutcome reports the result of a login attempt. Success navigates to
// the gallery without a tooltip; failure shows the generic failure tooltip.
func (n *Notifier) LoginOutcome(err error) {
	if err != nil {
		n.popups.OpenInfoTooltip(Tooltip{Icon: IconFail, Message: MsgGenericFailure})
		return
	}
	if n.navigate != nil {
		n.navigate(routes.PathRoot)
	}
}

// MutationFailure surfaces a failed card or profile mutation. The original
// client only logged these; routing them through the tooltip makes the
// failure visible to the user.
func (n *Notifier) MutationFailure(err error) {
	if err == nil {
		return
	}
	n.popups.OpenInfoTooltip(Tooltip{Icon: IconFail, Message: MsgGenericFailure})
}
