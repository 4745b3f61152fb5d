package vkng

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func debugMessengerOptions(log logrus.FieldLogger) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    logDebug(log),
	}
}

func logDebug(log logrus.FieldLogger) func(ext_debug_utils.DebugUtilsMessageTypeFlags, ext_debug_utils.DebugUtilsMessageSeverityFlags, *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	return func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
		entry := log.WithFields(logrus.Fields{
			"source":   "validation",
			"severity": severity,
			"type":     msgType,
		})

		switch levelFor(severity) {
		case logrus.ErrorLevel:
			entry.Error(data.Message)
		case logrus.WarnLevel:
			entry.Warn(data.Message)
		default:
			entry.Info(data.Message)
		}

		return false
	}
}

func levelFor(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) logrus.Level {
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		return logrus.ErrorLevel
	case severity&ext_debug_utils.SeverityWarning != 0:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
