package mensageria

import (
	"errors"
	"fmt"

	"github.com/KromaEnergia/finance-service/internal/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrFilaDesconhecida indica mensagem recebida por uma fila fora do contrato.
var ErrFilaDesconhecida = errors.New("fila desconhecida")

// ErrPayloadInvalido indica payload que falhou na desserialização/validação.
// A mensagem não é reenfileirada: o broker decide dead-letter ou descarte.
var ErrPayloadInvalido = errors.New("payload inválido")

// HandlerEvento aplica o payload bruto de uma fila ao estado local.
type HandlerEvento func(corpo []byte) error

// Consumidor roteia mensagens das filas de entrada para os handlers de
// sincronização. Não guarda estado além da tabela de rotas.
type Consumidor struct {
	rotas map[string]HandlerEvento
}

func NovoConsumidor() *Consumidor {
	return &Consumidor{rotas: make(map[string]HandlerEvento)}
}

// Registrar associa uma fila de entrada a um handler.
func (c *Consumidor) Registrar(fila string, h HandlerEvento) error {
	for _, conhecida := range FilasEntrada() {
		if fila == conhecida {
			c.rotas[fila] = h
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFilaDesconhecida, fila)
}

// Despachar valida a fila e entrega o payload ao handler registrado.
func (c *Consumidor) Despachar(fila string, corpo []byte) error {
	h, ok := c.rotas[fila]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFilaDesconhecida, fila)
	}
	return h(corpo)
}

// IniciarConsumidores abre um consumer com ack manual para cada fila
// registrada. Payload inválido recebe Nack sem requeue; falha de
// armazenamento recebe Nack com requeue, já que os handlers são
// idempotentes e a reentrega do broker é o caminho de retry.
func (c *Consumidor) IniciarConsumidores(canal *amqp.Channel) error {
	for fila := range c.rotas {
		entregas, err := canal.Consume(fila, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("consume %s: %w", fila, err)
		}

		go func(fila string, entregas <-chan amqp.Delivery) {
			for msg := range entregas {
				err := c.Despachar(fila, msg.Body)
				switch {
				case err == nil:
					msg.Ack(false)
				case errors.Is(err, ErrPayloadInvalido):
					logger.Log.WithField("fila", fila).WithError(err).Warn("Payload inválido, descartando")
					msg.Nack(false, false)
				default:
					logger.Log.WithField("fila", fila).WithError(err).Error("Falha ao aplicar evento, reenfileirando")
					msg.Nack(false, true)
				}
			}
		}(fila, entregas)
	}
	logger.Log.Info("Consumidores RabbitMQ iniciados")
	return nil
}
