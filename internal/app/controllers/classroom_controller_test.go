package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/controllers"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/models"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/routes"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/services"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/apperrors"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = validation.RegisterRules(v)
	}
}

type memTeacherRepo struct {
	mu       sync.Mutex
	teachers map[primitive.ObjectID]*models.Teacher
}

func (r *memTeacherRepo) Create(_ context.Context, t *models.Teacher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Classrooms == nil {
		t.Classrooms = []primitive.ObjectID{}
	}
	r.teachers[t.ID] = t
	return nil
}

func (r *memTeacherRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func (r *memTeacherRepo) GetAll(_ context.Context) ([]*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (r *memTeacherRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Teacher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	delete(r.teachers, id)
	return t, nil
}

type memStudentRepo struct {
	mu       sync.Mutex
	students map[primitive.ObjectID]*models.Student
}

func (r *memStudentRepo) Create(_ context.Context, s *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	if s.Classrooms == nil {
		s.Classrooms = []primitive.ObjectID{}
	}
	r.students[s.ID] = s
	return nil
}

func (r *memStudentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (r *memStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, nil
}

func (r *memStudentRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	delete(r.students, id)
	return s, nil
}

type memClassroomRepo struct {
	mu         sync.Mutex
	classrooms map[primitive.ObjectID]*models.Classroom
}

func (r *memClassroomRepo) Create(_ context.Context, c *models.Classroom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.QuizHistory == nil {
		c.QuizHistory = []primitive.ObjectID{}
	}
	r.classrooms[c.ID] = c
	return nil
}

func (r *memClassroomRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classrooms[id]
	if !ok {
		return nil, apperrors.ErrClassroomNotFound
	}
	return c, nil
}

func (r *memClassroomRepo) GetAll(_ context.Context) ([]*models.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Classroom, 0, len(r.classrooms))
	for _, c := range r.classrooms {
		out = append(out, c)
	}
	return out, nil
}

func (r *memClassroomRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.Classroom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classrooms[id]
	if !ok {
		return nil, apperrors.ErrClassroomNotFound
	}
	delete(r.classrooms, id)
	return c, nil
}

func (r *memClassroomRepo) AppendQuiz(_ context.Context, classroomID, quizID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.classrooms[classroomID]
	if !ok {
		return apperrors.ErrClassroomNotFound
	}
	c.QuizHistory = append(c.QuizHistory, quizID)
	return nil
}

func (r *memClassroomRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.classrooms)
}

type memQuizRepo struct {
	mu      sync.Mutex
	quizzes map[primitive.ObjectID]*models.Quiz
}

func (r *memQuizRepo) Create(_ context.Context, q *models.Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if q.ID.IsZero() {
		q.ID = primitive.NewObjectID()
	}
	r.quizzes[q.ID] = q
	return nil
}

func (r *memQuizRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]*models.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Quiz, 0, len(ids))
	for _, id := range ids {
		if q, ok := r.quizzes[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuizRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.quizzes)
}

type recordingEnqueuer struct {
	mu         sync.Mutex
	classrooms []*models.Classroom
}

func (e *recordingEnqueuer) EnqueueClassroomLinks(c *models.Classroom) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.classrooms = append(e.classrooms, c)
}

func (e *recordingEnqueuer) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.classrooms)
}

type testEnv struct {
	router     *gin.Engine
	teachers   *memTeacherRepo
	students   *memStudentRepo
	classrooms *memClassroomRepo
	quizzes    *memQuizRepo
	links      *recordingEnqueuer
}

func newTestEnv() *testEnv {
	env := &testEnv{
		teachers:   &memTeacherRepo{teachers: make(map[primitive.ObjectID]*models.Teacher)},
		students:   &memStudentRepo{students: make(map[primitive.ObjectID]*models.Student)},
		classrooms: &memClassroomRepo{classrooms: make(map[primitive.ObjectID]*models.Classroom)},
		quizzes:    &memQuizRepo{quizzes: make(map[primitive.ObjectID]*models.Quiz)},
		links:      &recordingEnqueuer{},
	}

	teacherService := services.NewTeacherService(env.teachers)
	studentService := services.NewStudentService(env.students)
	classroomService := services.NewClassroomService(env.classrooms, env.quizzes, env.links, zerolog.Nop())

	env.router = gin.New()
	routes.SetupRouter(env.router,
		controllers.NewTeacherController(teacherService),
		controllers.NewStudentController(studentService),
		controllers.NewClassroomController(classroomService),
	)
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateClassroom_Success(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/classrooms", gin.H{
		"name":     "Physics 101",
		"subject":  "physics",
		"teacher":  primitive.NewObjectID().Hex(),
		"students": []string{primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex()},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Physics 101", data["name"])
	assert.True(t, validation.IsObjectID(data["id"].(string)))

	assert.Equal(t, 1, env.classrooms.count())
	assert.Equal(t, 1, env.links.count())
}

func TestCreateClassroom_MissingTeacherField(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/classrooms", gin.H{
		"name": "Physics 101",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "teacher", errDetail["field"])

	// Validation rejected the request before anything touched the store.
	assert.Zero(t, env.classrooms.count())
	assert.Zero(t, env.links.count())
}

func TestCreateClassroom_MalformedStudentID(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/classrooms", gin.H{
		"name":     "Physics 101",
		"teacher":  primitive.NewObjectID().Hex(),
		"students": []string{"not-a-valid-identifier"},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, env.classrooms.count())
}

func TestGetClassroom_InvalidPathID(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodGet, "/api/v1/classrooms/not-hex", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VAL_002", errDetail["code"])
	assert.Equal(t, "id", errDetail["field"])
}

// The handler classifies a malformed id itself when reached without the
// path-validation middleware in front of it.
func TestGetClassroomByID_MalformedIDWithoutRouteGuard(t *testing.T) {
	env := newTestEnv()
	controller := controllers.NewClassroomController(
		services.NewClassroomService(env.classrooms, env.quizzes, env.links, zerolog.Nop()),
	)

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "not-hex"}}

	controller.GetClassroomByID(ctx)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errDetail, ok := decodeBody(t, rec)["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "VAL_002", errDetail["code"])
}

func TestGetClassroom_NotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodGet, "/api/v1/classrooms/"+primitive.NewObjectID().Hex(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RES_001", errDetail["code"])
}

func TestDeleteClassroom(t *testing.T) {
	env := newTestEnv()

	created := env.request(t, http.MethodPost, "/api/v1/classrooms", gin.H{
		"name":    "Chemistry",
		"teacher": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["data"].(map[string]interface{})["id"].(string)

	rec := env.request(t, http.MethodDelete, "/api/v1/classrooms/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/classrooms/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateQuiz_ClassroomNotFound(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/classrooms/"+primitive.NewObjectID().Hex()+"/quizzes", gin.H{
		"title": "Midterm review",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	// The classroom lookup failed first, so no quiz was written.
	assert.Zero(t, env.quizzes.count())
}

func TestCreateQuiz_AndHistoryOrder(t *testing.T) {
	env := newTestEnv()

	created := env.request(t, http.MethodPost, "/api/v1/classrooms", gin.H{
		"name":    "Physics 101",
		"teacher": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusCreated, created.Code)
	id := decodeBody(t, created)["data"].(map[string]interface{})["id"].(string)

	for _, title := range []string{"Kinematics", "Dynamics"} {
		rec := env.request(t, http.MethodPost, "/api/v1/classrooms/"+id+"/quizzes", gin.H{
			"title":   title,
			"subject": "physics",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	assert.Equal(t, 2, env.quizzes.count())

	rec := env.request(t, http.MethodGet, "/api/v1/classrooms/"+id+"/quizzes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeBody(t, rec)["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 2)
	assert.Equal(t, "Kinematics", data[0].(map[string]interface{})["title"])
	assert.Equal(t, "Dynamics", data[1].(map[string]interface{})["title"])
}

func TestCreateTeacher_Success(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/teachers", gin.H{
		"firstName": "Amina",
		"lastName":  "Okafor",
		"email":     "a.okafor@school.edu",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	data, ok := decodeBody(t, rec)["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Amina", data["firstName"])
	// A fresh teacher starts with an empty back-reference list.
	assert.Equal(t, []interface{}{}, data["classrooms"])
}

func TestCreateStudent_ValidationFailure(t *testing.T) {
	env := newTestEnv()

	rec := env.request(t, http.MethodPost, "/api/v1/students", gin.H{
		"firstName": "Kwame",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
