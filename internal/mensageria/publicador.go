package mensageria

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publicador emite mensagens JSON em filas nomeadas.
type Publicador interface {
	Publicar(fila string, corpo any) error
}

// PublicadorAMQP publica em filas duráveis do RabbitMQ com delivery persistente.
type PublicadorAMQP struct {
	conn  *amqp.Connection
	canal *amqp.Channel
}

func NovoPublicadorAMQP(url string) (*PublicadorAMQP, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	canal, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	p := &PublicadorAMQP{conn: conn, canal: canal}
	for _, fila := range append(FilasEntrada(), FilasSaida()...) {
		if _, err := canal.QueueDeclare(fila, true, false, false, false, nil); err != nil {
			p.Fechar()
			return nil, err
		}
	}
	return p, nil
}

func (p *PublicadorAMQP) Publicar(fila string, corpo any) error {
	body, err := json.Marshal(corpo)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.canal.PublishWithContext(ctx, "", fila, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return err
	}
	logger.Log.WithField("fila", fila).Debug("Mensagem publicada")
	return nil
}

func (p *PublicadorAMQP) Canal() *amqp.Channel {
	return p.canal
}

func (p *PublicadorAMQP) Fechar() {
	if p.canal != nil {
		p.canal.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		p.conn.Close()
	}
}

// PublicadorNulo descarta mensagens; usado quando RABBITMQ_ENABLED=false.
type PublicadorNulo struct{}

func (PublicadorNulo) Publicar(fila string, corpo any) error {
	logger.Log.WithField("fila", fila).Debug("RabbitMQ desabilitado, mensagem descartada")
	return nil
}
