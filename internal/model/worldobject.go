package model

// Object — всё, что живёт на сцене и обновляется каждый кадр
// (актёры, снаряды).
type Object interface {
	ObjectID() uint32
	Update(dt float64)
	Alive() bool
	Position() Vec
}

// ObjectSink принимает новые объекты для добавления в мир.
// Реализуется сценой; объект попадает в живой набор после текущего кадра.
type ObjectSink interface {
	Spawn(obj Object)
}

// WorldObject — базовая кинематика игрового объекта:
// позиция, скорость, угол поворота и размер.
// Не потокобезопасен: вся симуляция однопоточная.
type WorldObject struct {
	objectID uint32
	position Vec
	velocity Vec
	angle    float64
	width    float64
	height   float64
	alive    bool
}

// NewWorldObject создаёт живой объект с заданным ID и размером.
func NewWorldObject(objectID uint32, width, height float64) WorldObject {
	return WorldObject{
		objectID: objectID,
		width:    width,
		height:   height,
		alive:    true,
	}
}

// ObjectID возвращает уникальный ID объекта (immutable после создания).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Position возвращает копию координат объекта.
func (w *WorldObject) Position() Vec {
	return w.position
}

// SetPosition телепортирует объект.
func (w *WorldObject) SetPosition(p Vec) {
	w.position = p
}

// Velocity возвращает текущую скорость.
func (w *WorldObject) Velocity() Vec {
	return w.velocity
}

// SetVelocity устанавливает скорость и поворачивает объект по направлению движения.
func (w *WorldObject) SetVelocity(v Vec) {
	w.velocity = v
	if !IsZero(v) {
		w.angle = Heading(v)
	}
}

// ZeroVelocity останавливает объект, не меняя угол.
func (w *WorldObject) ZeroVelocity() {
	w.velocity = Vec{}
}

// Angle возвращает угол поворота в радианах.
func (w *WorldObject) Angle() float64 {
	return w.angle
}

// RotateTo поворачивает объект в сторону direction.
func (w *WorldObject) RotateTo(direction Vec) {
	if !IsZero(direction) {
		w.angle = Heading(direction)
	}
}

// Size возвращает ширину и высоту.
func (w *WorldObject) Size() (float64, float64) {
	return w.width, w.height
}

// Radius — радиус описанной окружности для проверок дистанции.
func (w *WorldObject) Radius() float64 {
	return max(w.width, w.height) / 2
}

// Rect возвращает прямоугольник объекта с центром в его позиции.
func (w *WorldObject) Rect() Rect {
	return RectAround(w.position, w.width, w.height)
}

// Alive сообщает, находится ли объект в мире.
func (w *WorldObject) Alive() bool {
	return w.alive
}

// Remove убирает объект из мира; возвращает false при повторном вызове.
// Сцена удаляет такие объекты в конце кадра.
func (w *WorldObject) Remove() bool {
	if !w.alive {
		return false
	}
	w.alive = false
	return true
}

// Integrate сдвигает позицию на velocity*dt.
func (w *WorldObject) Integrate(dt float64) {
	w.position = w.position.Add(w.velocity.Mul(dt))
}
