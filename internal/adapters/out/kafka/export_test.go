package kafka

var NewOrderEventPublisherWithWriter = newOrderEventPublisher
